package stats

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
	"github.com/tu-usuario/almacen-movil/internal/domain/stock"
)

// Totals totales derivados del catálogo completo. Sobrescriben los tres
// campos numéricos del agregado Statistics; los rankings se actualizan por
// separado con Record.
type Totals struct {
	TotalProducts   int
	OutOfStock      int
	TotalStockValue decimal.Decimal
}

// Recompute recalcula los totales desde cero a partir del catálogo.
//
// TotalStockValue = Σ precio × Σ cantidades por producto. El descuento
// (solde) se ignora a propósito: así lo calcula el backend y los consumidores
// del agregado dependen de ese valor bruto.
func Recompute(products []entity.Product) Totals {
	totals := Totals{TotalStockValue: decimal.Zero}

	for _, p := range products {
		totals.TotalProducts++

		summary := stock.Classify(p.Stocks)
		if summary.Status == stock.StatusOutOfStock {
			totals.OutOfStock++
		}

		qty := decimal.NewFromInt(int64(summary.Total))
		totals.TotalStockValue = totals.TotalStockValue.Add(p.Price.Mul(qty))
	}
	return totals
}
