package repository

import (
	"context"

	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
)

// WarehousemanRepository puerto de lectura de almaceneros. El backend es el
// dueño de estos datos; el cliente solo los consulta para el login.
type WarehousemanRepository interface {
	// List devuelve todos los almaceneros (GET /warehousemans).
	List(ctx context.Context) ([]entity.Warehouseman, error)
	// GetByID devuelve un almacenero o domain.ErrNotFound.
	GetByID(ctx context.Context, id int) (*entity.Warehouseman, error)
}
