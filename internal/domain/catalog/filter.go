// Package catalog implementa el motor de búsqueda y filtrado del catálogo de
// productos. Todo el filtrado es del lado del cliente: el backend devuelve la
// colección completa y aquí se componen los predicados.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
	"github.com/tu-usuario/almacen-movil/internal/domain/stock"
)

// SearchSpec criterios de búsqueda simultáneos. Todos los campos son
// opcionales; cadena vacía significa "sin restricción". MinPrice y MaxPrice
// llegan como texto libre de la UI: un valor no numérico se trata como
// ausente, nunca como error.
type SearchSpec struct {
	Text        string
	Type        string
	Supplier    string
	StockStatus stock.Status // "" = sin restricción
	MinPrice    string
	MaxPrice    string
}

// IsEmpty indica si la especificación no impone ninguna restricción.
func (s SearchSpec) IsEmpty() bool {
	return strings.TrimSpace(s.Text) == "" &&
		s.Type == "" && s.Supplier == "" && s.StockStatus == "" &&
		parsePrice(s.MinPrice) == nil && parsePrice(s.MaxPrice) == nil
}

// Filter devuelve los productos que satisfacen todos los predicados de spec,
// preservando el orden relativo de entrada. Nunca muta products.
func Filter(products []entity.Product, spec SearchSpec) []entity.Product {
	if spec.IsEmpty() {
		out := make([]entity.Product, len(products))
		copy(out, products)
		return out
	}

	terms := searchTerms(spec.Text)
	minPrice := parsePrice(spec.MinPrice)
	maxPrice := parsePrice(spec.MaxPrice)

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if !matchesTerms(p, terms) {
			continue
		}
		if spec.Type != "" && p.Type != spec.Type {
			continue
		}
		if spec.Supplier != "" && p.Supplier != spec.Supplier {
			continue
		}
		if spec.StockStatus != "" && stock.Classify(p.Stocks).Status != spec.StockStatus {
			continue
		}
		if minPrice != nil && p.Price.LessThan(*minPrice) {
			continue
		}
		if maxPrice != nil && p.Price.GreaterThan(*maxPrice) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// searchTerms separa el texto en términos por espacios, en minúsculas.
// Texto vacío o solo espacios → sin términos (el filtro de texto es no-op).
func searchTerms(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// matchesTerms exige que cada término sea subcadena del texto indexable del
// producto (nombre, tipo, proveedor, código de barras y precio concatenados).
// Semántica AND entre términos; el código de barras se compara por subcadena,
// no por igualdad exacta.
func matchesTerms(p entity.Product, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{
		p.Name, p.Type, p.Supplier, p.Barcode, p.Price.String(),
	}, " "))
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

// parsePrice interpreta un límite de precio escrito por el usuario.
// Devuelve nil (sin restricción) si el texto está vacío o no es numérico.
func parsePrice(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
