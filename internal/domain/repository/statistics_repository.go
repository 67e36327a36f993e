package repository

import (
	"context"

	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
)

// StatisticsRepository puerto del agregado de estadísticas (recurso único del
// backend). Put sobrescribe el documento completo; las actualizaciones
// parciales se componen en la capa de aplicación con dto.StatisticsPatch.
type StatisticsRepository interface {
	Get(ctx context.Context) (*entity.Statistics, error)
	Put(ctx context.Context, statistics *entity.Statistics) (*entity.Statistics, error)
}
