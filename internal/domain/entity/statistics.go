package entity

import "github.com/shopspring/decimal"

// Statistics agregado derivado persistido en el backend (recurso único).
// Los totales se recalculan completos tras cada mutación; los dos rankings
// se actualizan incrementalmente y por separado (ventana de inconsistencia
// aceptada entre ambos).
type Statistics struct {
	TotalProducts       int             `json:"totalProducts"`
	OutOfStock          int             `json:"outOfStock"`
	TotalStockValue     decimal.Decimal `json:"totalStockValue"`
	MostAddedProducts   []ProductStat   `json:"mostAddedProducts"`
	MostRemovedProducts []ProductStat   `json:"mostRemovedProducts"`
}

// ProductStat entrada de un ranking top-3 de movimientos.
type ProductStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
