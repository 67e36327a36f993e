package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
)

// StatisticsPatch actualización parcial tipada del agregado de estadísticas.
// El conjunto de campos actualizables está cerrado por construcción: un campo
// que no figura aquí no puede colarse en el documento persistido (sustituye
// al spread de objetos arbitrarios del cliente original).
type StatisticsPatch struct {
	TotalProducts       *int
	OutOfStock          *int
	TotalStockValue     *decimal.Decimal
	MostAddedProducts   []entity.ProductStat
	MostRemovedProducts []entity.ProductStat
}

// Apply fusiona el parche sobre el agregado vigente y devuelve el documento
// completo listo para el PUT. Los campos nil se conservan tal cual.
func (p StatisticsPatch) Apply(current entity.Statistics) entity.Statistics {
	out := current
	if p.TotalProducts != nil {
		out.TotalProducts = *p.TotalProducts
	}
	if p.OutOfStock != nil {
		out.OutOfStock = *p.OutOfStock
	}
	if p.TotalStockValue != nil {
		out.TotalStockValue = *p.TotalStockValue
	}
	if p.MostAddedProducts != nil {
		out.MostAddedProducts = p.MostAddedProducts
	}
	if p.MostRemovedProducts != nil {
		out.MostRemovedProducts = p.MostRemovedProducts
	}
	return out
}
