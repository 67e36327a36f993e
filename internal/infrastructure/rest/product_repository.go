package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tu-usuario/almacen-movil/internal/domain"
	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
	"github.com/tu-usuario/almacen-movil/internal/domain/repository"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementa repository.ProductRepository sobre
// /products del backend.
type ProductRepository struct {
	client *Client
}

// NewProductRepository construye el repositorio.
func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

// FetchAll GET /products.
func (r *ProductRepository) FetchAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.client.doJSON(ctx, http.MethodGet, "/products", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID GET /products/:id. Un 404 del backend se traduce a
// domain.ErrProductNotFound.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	var product entity.Product
	err := r.client.doJSON(ctx, http.MethodGet, "/products/"+strconv.Itoa(id), nil, nil, &product)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrProductNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByBarcode GET /products?barcode=. El backend responde con una lista;
// cero elementos es (nil, nil): resultado "no existe", no un error.
func (r *ProductRepository) FindByBarcode(ctx context.Context, code string) (*entity.Product, error) {
	query := url.Values{"barcode": []string{code}}
	var products []entity.Product
	if err := r.client.doJSON(ctx, http.MethodGet, "/products", query, nil, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

// Create POST /products.
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var created entity.Product
	if err := r.client.doJSON(ctx, http.MethodPost, "/products", nil, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update PATCH /products/:id con el documento modificado completo.
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var updated entity.Product
	path := "/products/" + strconv.Itoa(product.ID)
	err := r.client.doJSON(ctx, http.MethodPatch, path, nil, product, &updated)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("producto %d: %w", product.ID, domain.ErrProductNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete DELETE /products/:id.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	err := r.client.doJSON(ctx, http.MethodDelete, "/products/"+strconv.Itoa(id), nil, nil, nil)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("producto %d: %w", id, domain.ErrProductNotFound)
	}
	return err
}
