// Package stats orquesta el agregado de estadísticas persistido: recálculo de
// totales, rankings de movimientos y exportación a PDF.
package stats

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-movil/internal/application/dto"
	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
	"github.com/tu-usuario/almacen-movil/internal/domain/repository"
	domainstats "github.com/tu-usuario/almacen-movil/internal/domain/stats"
	"github.com/tu-usuario/almacen-movil/pkg/logger"
)

// Direction sentido de un movimiento de inventario para los rankings.
type Direction string

const (
	// DirectionAdded alta de producto o incremento de stock.
	DirectionAdded Direction = "added"
	// DirectionRemoved baja de producto o decremento de stock.
	DirectionRemoved Direction = "removed"
)

// UseCase casos de uso del agregado de estadísticas.
//
// Los totales y los rankings se actualizan en escrituras separadas sobre el
// mismo recurso: un fallo entre ambas deja totales y rankings reflejando
// instantes distintos. Ventana de inconsistencia aceptada; el siguiente
// RefreshTotals la cierra.
type UseCase struct {
	products  repository.ProductRepository
	stats     repository.StatisticsRepository
	generator ReportGenerator
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	products repository.ProductRepository,
	stats repository.StatisticsRepository,
	generator ReportGenerator,
	log *logger.Logger,
) *UseCase {
	return &UseCase{products: products, stats: stats, generator: generator, log: log}
}

// Get devuelve el agregado vigente.
func (uc *UseCase) Get(ctx context.Context) (*entity.Statistics, error) {
	return uc.stats.Get(ctx)
}

// RefreshTotals recalcula los tres totales desde el catálogo completo y los
// sobrescribe en el agregado, dejando los rankings intactos.
func (uc *UseCase) RefreshTotals(ctx context.Context) (*entity.Statistics, error) {
	products, err := uc.products.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: obtener catálogo: %w", err)
	}

	totals := domainstats.Recompute(products)
	patch := dto.StatisticsPatch{
		TotalProducts:   &totals.TotalProducts,
		OutOfStock:      &totals.OutOfStock,
		TotalStockValue: &totals.TotalStockValue,
	}

	updated, err := uc.applyPatch(ctx, patch)
	if err != nil {
		return nil, err
	}

	uc.log.Debug().
		Int("total_products", totals.TotalProducts).
		Int("out_of_stock", totals.OutOfStock).
		Str("total_stock_value", totals.TotalStockValue.String()).
		Msg("totales de estadísticas recalculados")
	return updated, nil
}

// RecordMovement registra un movimiento en el ranking correspondiente.
// Si la lectura del agregado falla, el movimiento no se aplica y el fallo se
// propaga al llamador (sin reintento).
func (uc *UseCase) RecordMovement(ctx context.Context, productName string, direction Direction) (*entity.Statistics, error) {
	current, err := uc.stats.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: leer agregado: %w", err)
	}

	var patch dto.StatisticsPatch
	switch direction {
	case DirectionAdded:
		patch.MostAddedProducts = domainstats.Record(current.MostAddedProducts, productName)
	case DirectionRemoved:
		patch.MostRemovedProducts = domainstats.Record(current.MostRemovedProducts, productName)
	default:
		return nil, fmt.Errorf("stats: dirección de movimiento desconocida: %q", direction)
	}

	updated, err := uc.stats.Put(ctx, applyTo(patch, *current))
	if err != nil {
		return nil, fmt.Errorf("stats: guardar ranking: %w", err)
	}

	uc.log.Debug().
		Str("product", productName).
		Str("direction", string(direction)).
		Msg("movimiento registrado en el ranking")
	return updated, nil
}

// ExportPDF genera el informe PDF del agregado vigente.
func (uc *UseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	current, err := uc.stats.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: leer agregado para el informe: %w", err)
	}
	pdf, err := uc.generator.GenerateStatisticsPDF(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("stats: generar informe PDF: %w", err)
	}
	return pdf, nil
}

// applyPatch lee el agregado vigente, aplica el parche y lo persiste.
func (uc *UseCase) applyPatch(ctx context.Context, patch dto.StatisticsPatch) (*entity.Statistics, error) {
	current, err := uc.stats.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: leer agregado: %w", err)
	}
	updated, err := uc.stats.Put(ctx, applyTo(patch, *current))
	if err != nil {
		return nil, fmt.Errorf("stats: guardar agregado: %w", err)
	}
	return updated, nil
}

func applyTo(patch dto.StatisticsPatch, current entity.Statistics) *entity.Statistics {
	merged := patch.Apply(current)
	return &merged
}
