package entity

// Warehouseman almacenero registrado en el backend. El cliente lo trata como
// dato de referencia de solo lectura; la clave secreta es el credencial de
// login (búsqueda en texto plano, sin tokens).
type Warehouseman struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dob"`
	City        string `json:"city"`
	SecretKey   string `json:"secretKey"`
	WarehouseID int    `json:"warehouseId"`
}
