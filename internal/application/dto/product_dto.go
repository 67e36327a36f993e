package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-movil/internal/domain"
	"github.com/tu-usuario/almacen-movil/internal/domain/barcode"
	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
)

// AddProductInput formulario de alta de producto. Los campos numéricos llegan
// como texto (así los entrega la UI móvil) y se validan y convierten aquí,
// antes de cualquier llamada de red.
type AddProductInput struct {
	Name     string
	Type     string
	Barcode  string
	Price    string
	Solde    string // descuento opcional, porcentaje [0,100]
	Supplier string
	Image    string

	// Stock inicial (una sola ubicación en el alta)
	StockName string
	Quantity  string
	City      string
	Latitude  string
	Longitude string
}

// ToProduct valida el formulario y construye la entidad lista para el POST.
// Devuelve *domain.ValidationError en el primer campo inválido.
func (in AddProductInput) ToProduct() (*entity.Product, error) {
	for _, req := range []struct{ field, value string }{
		{"name", in.Name},
		{"type", in.Type},
		{"supplier", in.Supplier},
		{"price", in.Price},
		{"stockName", in.StockName},
		{"quantity", in.Quantity},
		{"city", in.City},
	} {
		if strings.TrimSpace(req.value) == "" {
			return nil, domain.NewValidationError(req.field, "es requerido")
		}
	}

	if !barcode.IsValid(in.Barcode) {
		return nil, domain.NewValidationError("barcode", "debe tener 8, 12, 13 o 14 dígitos")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil {
		return nil, domain.NewValidationError("price", "debe ser numérico")
	}
	if price.IsNegative() {
		return nil, domain.NewValidationError("price", "no puede ser negativo")
	}

	var solde *decimal.Decimal
	if strings.TrimSpace(in.Solde) != "" {
		d, err := decimal.NewFromString(strings.TrimSpace(in.Solde))
		if err != nil {
			return nil, domain.NewValidationError("solde", "debe ser numérico")
		}
		if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.NewValidationError("solde", "debe estar entre 0 y 100")
		}
		solde = &d
	}

	qty, err := strconv.Atoi(strings.TrimSpace(in.Quantity))
	if err != nil {
		return nil, domain.NewValidationError("quantity", "debe ser un entero")
	}
	if qty < 0 {
		return nil, domain.NewValidationError("quantity", "no puede ser negativa")
	}

	lat, err := parseCoordinate(in.Latitude)
	if err != nil {
		return nil, domain.NewValidationError("latitude", "coordenada no numérica")
	}
	lon, err := parseCoordinate(in.Longitude)
	if err != nil {
		return nil, domain.NewValidationError("longitude", "coordenada no numérica")
	}

	return &entity.Product{
		Name:     strings.TrimSpace(in.Name),
		Type:     strings.TrimSpace(in.Type),
		Barcode:  barcode.Normalize(in.Barcode),
		Price:    price,
		Solde:    solde,
		Supplier: strings.TrimSpace(in.Supplier),
		Image:    strings.TrimSpace(in.Image),
		Stocks: []entity.StockEntry{{
			ID:       1,
			Name:     strings.TrimSpace(in.StockName),
			Quantity: qty,
			Localisation: entity.Localisation{
				City:      strings.TrimSpace(in.City),
				Latitude:  lat,
				Longitude: lon,
			},
		}},
		EditedBy: []entity.EditRecord{},
	}, nil
}

// parseCoordinate acepta vacío (coordenada 0) o un flotante válido.
func parseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// UpdateProductInput actualización parcial de producto: solo los campos no-nil
// se aplican sobre la versión vigente. Stocks, si viene, sustituye la lista
// completa (las cantidades negativas se recortan a 0 en el caso de uso).
type UpdateProductInput struct {
	Name     *string
	Type     *string
	Barcode  *string
	Price    *decimal.Decimal
	Solde    *decimal.Decimal
	Supplier *string
	Image    *string
	Stocks   []entity.StockEntry
}

// Validate rechaza valores fuera de rango antes de tocar la red.
func (in UpdateProductInput) Validate() error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return domain.NewValidationError("name", "es requerido")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return domain.NewValidationError("price", "no puede ser negativo")
	}
	if in.Barcode != nil && !barcode.IsValid(*in.Barcode) {
		return domain.NewValidationError("barcode", "debe tener 8, 12, 13 o 14 dígitos")
	}
	for _, s := range in.Stocks {
		if s.Name == "" || s.Localisation.City == "" {
			return domain.NewValidationError("stocks", "nombre y ciudad son requeridos")
		}
	}
	return nil
}

// NewEditRecord construye la entrada de historial para el almacenero editor.
// La fecha se escribe como YYYY-MM-DD, el formato que espera el backend.
func NewEditRecord(warehousemanID int, now time.Time) entity.EditRecord {
	return entity.EditRecord{
		WarehousemanID: warehousemanID,
		At:             now.Format("2006-01-02"),
	}
}
