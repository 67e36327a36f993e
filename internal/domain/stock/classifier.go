// Package stock clasifica el nivel de existencias agregado de un producto.
package stock

import "github.com/tu-usuario/almacen-movil/internal/domain/entity"

// Status nivel de existencias de un producto.
type Status string

const (
	StatusOutOfStock Status = "out_of_stock"
	StatusLowStock   Status = "low_stock"
	StatusInStock    Status = "in_stock"
)

// lowStockThreshold por debajo de este total el producto se considera stock bajo.
const lowStockThreshold = 10

// Summary resultado de la clasificación.
type Summary struct {
	Status Status
	Total  int
}

// Classify suma las cantidades de todas las ubicaciones y clasifica:
// total == 0 → out_of_stock, 0 < total < 10 → low_stock, resto → in_stock.
// Una lista de stocks vacía clasifica como out_of_stock (verdad vacua:
// "toda cantidad es cero"); comportamiento heredado del backend y preservado
// a propósito.
func Classify(stocks []entity.StockEntry) Summary {
	total := 0
	for _, s := range stocks {
		total += s.Quantity
	}

	switch {
	case total == 0:
		return Summary{Status: StatusOutOfStock, Total: total}
	case total < lowStockThreshold:
		return Summary{Status: StatusLowStock, Total: total}
	default:
		return Summary{Status: StatusInStock, Total: total}
	}
}
