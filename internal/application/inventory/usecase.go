// Package inventory orquesta las operaciones de catálogo del almacenero:
// listado y búsqueda, consulta por código de barras, altas, ediciones de
// stock y bajas, con su efecto sobre el agregado de estadísticas.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/almacen-movil/internal/application/auth"
	"github.com/tu-usuario/almacen-movil/internal/application/dto"
	appstats "github.com/tu-usuario/almacen-movil/internal/application/stats"
	"github.com/tu-usuario/almacen-movil/internal/domain"
	"github.com/tu-usuario/almacen-movil/internal/domain/barcode"
	"github.com/tu-usuario/almacen-movil/internal/domain/catalog"
	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
	"github.com/tu-usuario/almacen-movil/internal/domain/repository"
	"github.com/tu-usuario/almacen-movil/pkg/logger"
)

// LookupResult resultado de una consulta por código de barras. No encontrar
// el producto no es un error: habilita el flujo "¿desea darlo de alta?".
type LookupResult struct {
	Found   bool
	Product *entity.Product
}

// UseCase casos de uso de inventario.
//
// Cada mutación sigue la secuencia estricta: leer estado vigente → construir
// el registro de edición → enviar la mutación → recalcular totales →
// actualizar el ranking. Los pasos son secuenciales dentro de una acción
// lógica, pero no hay exclusión mutua entre clientes: dos clientes mutando el
// mismo producto a la vez hacen last-write-wins (el backend no versiona).
type UseCase struct {
	products  repository.ProductRepository
	stats     *appstats.UseCase
	log       *logger.Logger
	listeners []func()
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, stats *appstats.UseCase, log *logger.Logger) *UseCase {
	return &UseCase{products: products, stats: stats, log: log, now: time.Now}
}

// OnMutationComplete registra un observador invocado tras cada mutación cuyo
// pipeline de estadísticas terminó con éxito (punto donde la UI refresca su
// copia del catálogo).
func (uc *UseCase) OnMutationComplete(fn func()) {
	uc.listeners = append(uc.listeners, fn)
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// List devuelve el catálogo completo.
func (uc *UseCase) List(ctx context.Context) ([]entity.Product, error) {
	return uc.products.FetchAll(ctx)
}

// GetByID devuelve un producto o domain.ErrProductNotFound.
func (uc *UseCase) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	return uc.products.GetByID(ctx, id)
}

// Search obtiene el catálogo y aplica el motor de filtrado del lado cliente.
func (uc *UseCase) Search(ctx context.Context, spec catalog.SearchSpec) ([]entity.Product, error) {
	products, err := uc.products.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventario: obtener catálogo: %w", err)
	}
	return catalog.Filter(products, spec), nil
}

// SearchIn filtra un catálogo ya obtenido, sin tocar la red (la UI refina
// los resultados en memoria mientras el usuario ajusta los criterios).
func (uc *UseCase) SearchIn(products []entity.Product, spec catalog.SearchSpec) []entity.Product {
	return catalog.Filter(products, spec)
}

// CheckBarcode valida el código y lo busca en el backend.
func (uc *UseCase) CheckBarcode(ctx context.Context, code string) (*LookupResult, error) {
	if !barcode.IsValid(code) {
		return nil, domain.NewValidationError("barcode", "debe tener 8, 12, 13 o 14 dígitos")
	}
	product, err := uc.products.FindByBarcode(ctx, barcode.Normalize(code))
	if err != nil {
		return nil, fmt.Errorf("inventario: buscar por código de barras: %w", err)
	}
	if product == nil {
		return &LookupResult{Found: false}, nil
	}
	return &LookupResult{Found: true, Product: product}, nil
}

// ── Mutaciones ────────────────────────────────────────────────────────────────

// Add da de alta un producto nuevo y registra el movimiento "added".
func (uc *UseCase) Add(ctx context.Context, session *auth.Session, in dto.AddProductInput) (*entity.Product, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}

	product, err := in.ToProduct()
	if err != nil {
		return nil, err
	}
	product.EditedBy = []entity.EditRecord{
		dto.NewEditRecord(session.Warehouseman.ID, uc.now()),
	}

	created, err := uc.products.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("inventario: crear producto: %w", err)
	}
	uc.log.Info().
		Int("product_id", created.ID).
		Str("name", created.Name).
		Msg("producto dado de alta")

	if err := uc.afterMutation(ctx, created.Name, appstats.DirectionAdded, true); err != nil {
		return created, err
	}
	return created, nil
}

// Update aplica una edición parcial sobre el producto. El sentido del
// movimiento se clasifica por el delta de cantidad agregada: sube → "added",
// baja → "removed", igual → sin movimiento.
func (uc *UseCase) Update(ctx context.Context, session *auth.Session, id int, in dto.UpdateProductInput) (*entity.Product, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	current, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("inventario: leer producto %d: %w", id, err)
	}
	before := current.TotalQuantity()

	applyUpdate(current, in)
	current.EditedBy = append(current.EditedBy, dto.NewEditRecord(session.Warehouseman.ID, uc.now()))

	updated, err := uc.products.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("inventario: actualizar producto %d: %w", id, err)
	}
	after := updated.TotalQuantity()
	uc.log.Info().
		Int("product_id", id).
		Int("qty_before", before).
		Int("qty_after", after).
		Msg("producto actualizado")

	direction, moved := movementFor(before, after)
	if err := uc.afterMutation(ctx, updated.Name, direction, moved); err != nil {
		return updated, err
	}
	return updated, nil
}

// AdjustStock incrementa (o decrementa, delta negativo) la cantidad de una
// ubicación concreta, recortando en 0, y añade el registro de edición.
func (uc *UseCase) AdjustStock(ctx context.Context, session *auth.Session, productID, stockID, delta int) (*entity.Product, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}

	current, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("inventario: leer producto %d: %w", productID, err)
	}
	before := current.TotalQuantity()

	idx := -1
	for i := range current.Stocks {
		if current.Stocks[i].ID == stockID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.NewValidationError("stockId", "ubicación de stock desconocida")
	}

	qty := current.Stocks[idx].Quantity + delta
	if qty < 0 {
		qty = 0 // la cantidad nunca baja de cero
	}
	current.Stocks[idx].Quantity = qty
	current.EditedBy = append(current.EditedBy, dto.NewEditRecord(session.Warehouseman.ID, uc.now()))

	updated, err := uc.products.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("inventario: ajustar stock del producto %d: %w", productID, err)
	}
	after := updated.TotalQuantity()
	uc.log.Info().
		Int("product_id", productID).
		Int("stock_id", stockID).
		Int("delta", after-before).
		Msg("stock ajustado")

	direction, moved := movementFor(before, after)
	if err := uc.afterMutation(ctx, updated.Name, direction, moved); err != nil {
		return updated, err
	}
	return updated, nil
}

// Delete elimina el producto y registra el movimiento "removed".
func (uc *UseCase) Delete(ctx context.Context, session *auth.Session, id int) error {
	if session == nil {
		return domain.ErrNoSession
	}

	// Se lee antes de borrar: el ranking necesita el nombre.
	current, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("inventario: leer producto %d: %w", id, err)
	}

	if err := uc.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("inventario: eliminar producto %d: %w", id, err)
	}
	uc.log.Info().Int("product_id", id).Str("name", current.Name).Msg("producto eliminado")

	return uc.afterMutation(ctx, current.Name, appstats.DirectionRemoved, true)
}

// ── Pipeline post-mutación ────────────────────────────────────────────────────

// afterMutation recalcula los totales y, si hubo movimiento, actualiza el
// ranking. Un fallo aborta el resto del pipeline y se propaga; la mutación en
// sí ya quedó aplicada en el backend (no hay transacción que las acople).
func (uc *UseCase) afterMutation(ctx context.Context, productName string, direction appstats.Direction, moved bool) error {
	if _, err := uc.stats.RefreshTotals(ctx); err != nil {
		return fmt.Errorf("inventario: recalcular totales: %w", err)
	}
	if moved {
		if _, err := uc.stats.RecordMovement(ctx, productName, direction); err != nil {
			return fmt.Errorf("inventario: registrar movimiento: %w", err)
		}
	}
	for _, fn := range uc.listeners {
		fn()
	}
	return nil
}

// movementFor clasifica el delta de cantidad agregada de una edición.
func movementFor(before, after int) (appstats.Direction, bool) {
	switch {
	case after > before:
		return appstats.DirectionAdded, true
	case after < before:
		return appstats.DirectionRemoved, true
	default:
		return "", false
	}
}

// applyUpdate copia los campos presentes del parche sobre la entidad y
// recorta en 0 cualquier cantidad negativa de la lista de stocks entrante.
func applyUpdate(p *entity.Product, in dto.UpdateProductInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.Barcode != nil {
		p.Barcode = barcode.Normalize(*in.Barcode)
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Solde != nil {
		p.Solde = in.Solde
	}
	if in.Supplier != nil {
		p.Supplier = *in.Supplier
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Stocks != nil {
		stocks := make([]entity.StockEntry, len(in.Stocks))
		copy(stocks, in.Stocks)
		for i := range stocks {
			if stocks[i].Quantity < 0 {
				stocks[i].Quantity = 0
			}
		}
		p.Stocks = stocks
	}
}
