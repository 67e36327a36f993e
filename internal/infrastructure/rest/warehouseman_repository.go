package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
	"github.com/tu-usuario/almacen-movil/internal/domain/repository"
)

var _ repository.WarehousemanRepository = (*WarehousemanRepository)(nil)

// WarehousemanRepository implementa repository.WarehousemanRepository sobre
// /warehousemans del backend. Solo lectura.
type WarehousemanRepository struct {
	client *Client
}

// NewWarehousemanRepository construye el repositorio.
func NewWarehousemanRepository(client *Client) *WarehousemanRepository {
	return &WarehousemanRepository{client: client}
}

// List GET /warehousemans.
func (r *WarehousemanRepository) List(ctx context.Context) ([]entity.Warehouseman, error) {
	var users []entity.Warehouseman
	if err := r.client.doJSON(ctx, http.MethodGet, "/warehousemans", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID GET /warehousemans/:id.
func (r *WarehousemanRepository) GetByID(ctx context.Context, id int) (*entity.Warehouseman, error) {
	var user entity.Warehouseman
	if err := r.client.doJSON(ctx, http.MethodGet, "/warehousemans/"+strconv.Itoa(id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
