package repository

import (
	"context"

	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
)

// ProductRepository define el puerto de acceso a productos del backend (DIP).
// La implementación concreta habla REST; para tests se inyectan dobles.
type ProductRepository interface {
	// FetchAll devuelve el catálogo completo (GET /products).
	FetchAll(ctx context.Context) ([]entity.Product, error)
	// GetByID devuelve un producto o domain.ErrProductNotFound.
	GetByID(ctx context.Context, id int) (*entity.Product, error)
	// FindByBarcode busca por código de barras exacto (GET /products?barcode=).
	// Cero coincidencias devuelve (nil, nil): es un resultado, no un error,
	// porque habilita el flujo de alta de producto desde el escáner.
	FindByBarcode(ctx context.Context, code string) (*entity.Product, error)
	// Create da de alta el producto y devuelve la versión con ID asignado.
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// Update envía el producto modificado (PATCH /products/:id).
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// Delete elimina el producto (DELETE /products/:id).
	Delete(ctx context.Context, id int) error
}
