package entity

import (
	"github.com/shopspring/decimal"
)

func init() {
	// El backend almacena price, solde y totalStockValue como números JSON;
	// por defecto decimal serializa entre comillas ("25" en vez de 25) y cada
	// escritura reescribiría esos campos como strings en el documento
	// compartido, rompiendo a los demás consumidores.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product representa un producto del inventario tal como lo expone el backend.
// Los nombres JSON son el contrato de red real del backend (solde, localisation,
// editedBy); no se renombran aquí para no romper la (de)serialización.
type Product struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Type     string           `json:"type"`
	Barcode  string           `json:"barcode"`
	Price    decimal.Decimal  `json:"price"`
	Solde    *decimal.Decimal `json:"solde,omitempty"` // descuento opcional [0,100]
	Supplier string           `json:"supplier"`
	Image    string           `json:"image"`
	Stocks   []StockEntry     `json:"stocks"`
	EditedBy []EditRecord     `json:"editedBy"`
}

// TotalQuantity suma las cantidades de todas las ubicaciones de stock.
func (p Product) TotalQuantity() int {
	total := 0
	for _, s := range p.Stocks {
		total += s.Quantity
	}
	return total
}

// StockEntry stock de un producto en una ubicación física.
// Quantity nunca es negativa: se recorta a 0 en la frontera de edición.
type StockEntry struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Quantity     int          `json:"quantity"`
	Localisation Localisation `json:"localisation"`
}

// Localisation ubicación geográfica de una bodega.
type Localisation struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EditRecord entrada del historial de ediciones de un producto.
// Append-only: una vez escrita nunca se modifica ni se elimina.
type EditRecord struct {
	WarehousemanID int    `json:"warehousemanId"`
	At             string `json:"at"` // fecha YYYY-MM-DD, como la escribe el cliente
}
