package stats

import (
	"context"

	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
)

// ReportGenerator puerto de salida para el informe de estadísticas.
// La implementación concreta usa Maroto (PDF); para tests se inyecta un mock.
type ReportGenerator interface {
	// GenerateStatisticsPDF genera el informe y devuelve sus bytes.
	GenerateStatisticsPDF(ctx context.Context, statistics *entity.Statistics) ([]byte, error)
}
