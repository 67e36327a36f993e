package stats_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-movil/internal/application/stats"
	"github.com/tu-usuario/almacen-movil/internal/backendtest"
	"github.com/tu-usuario/almacen-movil/internal/domain"
	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
	"github.com/tu-usuario/almacen-movil/internal/infrastructure/rest"
	"github.com/tu-usuario/almacen-movil/pkg/logger"
)

// stubGenerator devuelve bytes fijos: permite probar ExportPDF sin depender
// del motor de PDF real.
type stubGenerator struct {
	out []byte
	err error
}

func (g *stubGenerator) GenerateStatisticsPDF(_ context.Context, _ *entity.Statistics) ([]byte, error) {
	return g.out, g.err
}

func newStatsUseCase(t *testing.T, gen stats.ReportGenerator) (*stats.UseCase, *backendtest.Server) {
	t.Helper()
	server, err := backendtest.New()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client := rest.NewClient(server.URL(), 5*time.Second, logger.Nop())
	uc := stats.NewUseCase(
		rest.NewProductRepository(client),
		rest.NewStatisticsRepository(client),
		gen,
		logger.Nop(),
	)
	return uc, server
}

func producto(id int, name string, price int64, qty int) entity.Product {
	return entity.Product{
		ID:    id,
		Name:  name,
		Price: decimal.NewFromInt(price),
		Stocks: []entity.StockEntry{
			{ID: 1, Name: "Principal", Quantity: qty},
		},
	}
}

// ── RefreshTotals ─────────────────────────────────────────────────────────────

// Escenario de referencia: un producto agotado de precio 10 y otro de precio
// 20 con 5 unidades dan {2 productos, 1 agotado, valor 100}.
func TestRefreshTotals_EscenarioDeReferencia(t *testing.T) {
	uc, server := newStatsUseCase(t, nil)
	server.SeedProducts(
		producto(1, "Agotado", 10, 0),
		producto(2, "Disponible", 20, 5),
	)

	got, err := uc.RefreshTotals(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalProducts)
	assert.Equal(t, 1, got.OutOfStock)
	assert.True(t, decimal.NewFromInt(100).Equal(got.TotalStockValue),
		"valor esperado 100, obtenido %s", got.TotalStockValue)
}

// El recálculo sobrescribe totales pero nunca toca los rankings.
func TestRefreshTotals_PreservaLosRankings(t *testing.T) {
	uc, server := newStatsUseCase(t, nil)
	server.SeedStatistics(entity.Statistics{
		MostAddedProducts:   []entity.ProductStat{{Name: "Widget", Count: 3}},
		MostRemovedProducts: []entity.ProductStat{{Name: "Gadget", Count: 1}},
	})

	got, err := uc.RefreshTotals(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []entity.ProductStat{{Name: "Widget", Count: 3}}, got.MostAddedProducts)
	assert.Equal(t, []entity.ProductStat{{Name: "Gadget", Count: 1}}, got.MostRemovedProducts)
}

func TestRefreshTotals_CatalogoVacio(t *testing.T) {
	uc, _ := newStatsUseCase(t, nil)

	got, err := uc.RefreshTotals(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalProducts)
	assert.Equal(t, 0, got.OutOfStock)
	assert.True(t, got.TotalStockValue.IsZero())
}

// ── RecordMovement ────────────────────────────────────────────────────────────

func TestRecordMovement_Added(t *testing.T) {
	uc, _ := newStatsUseCase(t, nil)
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, "Widget", stats.DirectionAdded)
	require.NoError(t, err)
	got, err := uc.RecordMovement(ctx, "Widget", stats.DirectionAdded)
	require.NoError(t, err)

	assert.Equal(t, []entity.ProductStat{{Name: "Widget", Count: 2}}, got.MostAddedProducts)
	assert.Empty(t, got.MostRemovedProducts, "el movimiento added no toca el ranking removed")
}

func TestRecordMovement_Removed(t *testing.T) {
	uc, _ := newStatsUseCase(t, nil)

	got, err := uc.RecordMovement(context.Background(), "Gadget", stats.DirectionRemoved)

	require.NoError(t, err)
	assert.Equal(t, []entity.ProductStat{{Name: "Gadget", Count: 1}}, got.MostRemovedProducts)
}

func TestRecordMovement_DireccionDesconocida(t *testing.T) {
	uc, _ := newStatsUseCase(t, nil)

	_, err := uc.RecordMovement(context.Background(), "Widget", stats.Direction("sideways"))

	require.Error(t, err)
}

// Con el backend caído el movimiento no se aplica y el fallo se propaga.
func TestRecordMovement_BackendCaido(t *testing.T) {
	uc, server := newStatsUseCase(t, nil)
	server.Close()

	_, err := uc.RecordMovement(context.Background(), "Widget", stats.DirectionAdded)

	var netErr *domain.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

// ── ExportPDF ─────────────────────────────────────────────────────────────────

func TestExportPDF_DelegaEnElGenerador(t *testing.T) {
	uc, _ := newStatsUseCase(t, &stubGenerator{out: []byte("%PDF-stub")})

	got, err := uc.ExportPDF(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), got)
}

func TestExportPDF_PropagaElFalloDelGenerador(t *testing.T) {
	boom := errors.New("sin disco")
	uc, _ := newStatsUseCase(t, &stubGenerator{err: boom})

	_, err := uc.ExportPDF(context.Background())

	assert.ErrorIs(t, err, boom)
}
