// Package pdf implementa la exportación del informe de estadísticas de
// inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe  │  Fecha                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TARJETAS: Total productos | Agotados | Valor del stock     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LISTA: Productos más añadidos (top 3, nombre + conteo)     │
//	│  LISTA: Productos más retirados (top 3, nombre + conteo)    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Generado el DD/MM/YYYY                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appstats "github.com/tu-usuario/almacen-movil/internal/application/stats"
	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ appstats.ReportGenerator = (*MarotoStatisticsGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorDanger  = &props.Color{Red: 239, Green: 68, Blue: 68}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// currencyPrinter formatea montos en USD estilo en-US (separador de miles,
// dos decimales), igual que el informe del cliente móvil.
var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatisticsGenerator implementa stats.ReportGenerator usando Maroto v2.
type MarotoStatisticsGenerator struct {
	now func() time.Time
}

// NewMarotoStatisticsGenerator construye el generador.
func NewMarotoStatisticsGenerator() *MarotoStatisticsGenerator {
	return &MarotoStatisticsGenerator{now: time.Now}
}

// GenerateStatisticsPDF genera el informe y devuelve sus bytes.
func (g *MarotoStatisticsGenerator) GenerateStatisticsPDF(
	_ context.Context,
	statistics *entity.Statistics,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Estadísticas de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(statistics))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(leaderboardRows("Productos más añadidos", statistics.MostAddedProducts, colorPrimary)...)
	m.AddRows(line.NewRow(2))
	m.AddRows(leaderboardRows("Productos más retirados", statistics.MostRemovedProducts, colorDanger)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(g.now()))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del informe (izq) y fecha (der).
func headerRow(now time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("INFORME DE ESTADÍSTICAS DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(now.Format("02/01/2006"), props.Text{
				Size: 10, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// summaryRow: las tres tarjetas de totales.
func summaryRow(statistics *entity.Statistics) core.Row {
	return row.New(20).Add(
		summaryCard("Total de productos", fmt.Sprintf("%d", statistics.TotalProducts)),
		summaryCard("Productos agotados", fmt.Sprintf("%d", statistics.OutOfStock)),
		summaryCard("Valor total del stock", formatCurrency(statistics.TotalStockValue)),
	)
}

func summaryCard(title, value string) core.Col {
	return col.New(4).Add(
		text.New(title, props.Text{Size: 8, Top: 2, Color: colorGray, Align: align.Center}),
		text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 13, Top: 8, Color: colorPrimary, Align: align.Center,
		}),
	)
}

// leaderboardRows: título de sección más una fila por entrada del ranking;
// sin entradas se muestra "Sin datos".
func leaderboardRows(title string, board []entity.ProductStat, color *props.Color) []core.Row {
	rows := []core.Row{
		row.New(10).Add(
			col.New(12).Add(
				text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Color: color, Top: 2}),
			),
		),
	}

	if len(board) == 0 {
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(
				text.New("Sin datos", props.Text{Size: 9, Style: fontstyle.Italic, Color: colorGray, Top: 1}),
			),
		))
		return rows
	}

	for i, stat := range board {
		rows = append(rows, row.New(8).Add(
			col.New(9).Add(
				text.New(fmt.Sprintf("%d. %s", i+1, stat.Name), props.Text{Size: 10, Top: 1}),
			),
			col.New(3).Add(
				text.New(fmt.Sprintf("%d movimientos", stat.Count), props.Text{
					Size: 10, Align: align.Right, Top: 1, Color: color,
				}),
			),
		))
	}
	return rows
}

// footerRow: fecha de generación.
func footerRow(now time.Time) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Generado el "+now.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		),
	)
}

// formatCurrency monto en USD con separador de miles y dos decimales.
func formatCurrency(v decimal.Decimal) string {
	return currencyPrinter.Sprintf("$%.2f", v.InexactFloat64())
}
