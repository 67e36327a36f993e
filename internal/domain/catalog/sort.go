package catalog

import (
	"sort"
	"strings"

	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
)

// SortKey criterio de ordenación del catálogo.
type SortKey string

const (
	SortNone  SortKey = ""
	SortName  SortKey = "name"
	SortPrice SortKey = "price"
	SortStock SortKey = "stock"
)

// Sort devuelve una copia de products ordenada ascendentemente por la clave
// indicada. Orden estable; con SortNone devuelve la copia sin reordenar.
func Sort(products []entity.Product, key SortKey) []entity.Product {
	out := make([]entity.Product, len(products))
	copy(out, products)

	switch key {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case SortStock:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TotalQuantity() < out[j].TotalQuantity()
		})
	}
	return out
}
