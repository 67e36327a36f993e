package rest

import (
	"context"
	"net/http"

	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
	"github.com/tu-usuario/almacen-movil/internal/domain/repository"
)

var _ repository.StatisticsRepository = (*StatisticsRepository)(nil)

// StatisticsRepository implementa repository.StatisticsRepository sobre el
// recurso único /statistics del backend.
type StatisticsRepository struct {
	client *Client
}

// NewStatisticsRepository construye el repositorio.
func NewStatisticsRepository(client *Client) *StatisticsRepository {
	return &StatisticsRepository{client: client}
}

// Get GET /statistics.
func (r *StatisticsRepository) Get(ctx context.Context) (*entity.Statistics, error) {
	var statistics entity.Statistics
	if err := r.client.doJSON(ctx, http.MethodGet, "/statistics", nil, nil, &statistics); err != nil {
		return nil, err
	}
	return &statistics, nil
}

// Put PUT /statistics con el documento completo.
func (r *StatisticsRepository) Put(ctx context.Context, statistics *entity.Statistics) (*entity.Statistics, error) {
	var updated entity.Statistics
	if err := r.client.doJSON(ctx, http.MethodPut, "/statistics", nil, statistics, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
