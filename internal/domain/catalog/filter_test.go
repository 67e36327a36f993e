package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-movil/internal/domain/catalog"
	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
	"github.com/tu-usuario/almacen-movil/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de prueba
// ──────────────────────────────────────────────────────────────────────────────

func producto(id int, name, ptype, supplier, barcode string, price float64, qty int) entity.Product {
	return entity.Product{
		ID:       id,
		Name:     name,
		Type:     ptype,
		Supplier: supplier,
		Barcode:  barcode,
		Price:    decimal.NewFromFloat(price),
		Stocks: []entity.StockEntry{
			{ID: 1, Name: "Principal", Quantity: qty},
		},
	}
}

func catalogoDePrueba() []entity.Product {
	return []entity.Product{
		producto(1, "Red Shirt Large", "Ropa", "Acme", "12345678", 25, 12),
		producto(2, "Blue Shirt", "Ropa", "Acme", "87654321", 30, 0),
		producto(3, "Laptop Pro 15", "Informática", "TechSupply", "4006381333931", 1200, 5),
		producto(4, "Cable USB-C", "Informática", "TechSupply", "4006381333932", 9.99, 40),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro de texto
// ──────────────────────────────────────────────────────────────────────────────

// Búsqueda multi-término: todos los términos deben aparecer como subcadena
// del texto indexable ("red shirt" encuentra "Red Shirt Large" pero no
// "Blue Shirt", al que le falta "red").
func TestFilter_TextoMultiTerminoConSemanticaAND(t *testing.T) {
	got := catalog.Filter(catalogoDePrueba(), catalog.SearchSpec{Text: "red shirt"})

	require.Len(t, got, 1)
	assert.Equal(t, "Red Shirt Large", got[0].Name)
}

func TestFilter_TextoInsensibleAMayusculas(t *testing.T) {
	got := catalog.Filter(catalogoDePrueba(), catalog.SearchSpec{Text: "LAPTOP"})
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

// El texto indexa también proveedor, código de barras y precio.
func TestFilter_TextoBuscaEnProveedorBarcodeYPrecio(t *testing.T) {
	porProveedor := catalog.Filter(catalogoDePrueba(), catalog.SearchSpec{Text: "techsupply"})
	assert.Len(t, porProveedor, 2)

	// subcadena del código de barras, no igualdad exacta
	porBarcode := catalog.Filter(catalogoDePrueba(), catalog.SearchSpec{Text: "400638133393"})
	assert.Len(t, porBarcode, 2)

	porPrecio := catalog.Filter(catalogoDePrueba(), catalog.SearchSpec{Text: "9.99"})
	require.Len(t, porPrecio, 1)
	assert.Equal(t, "Cable USB-C", porPrecio[0].Name)
}

// Texto en blanco tras recortar espacios: el filtro de texto es no-op.
func TestFilter_TextoSoloEspaciosEsNoOp(t *testing.T) {
	got := catalog.Filter(catalogoDePrueba(), catalog.SearchSpec{Text: "   "})
	assert.Len(t, got, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicados estructurados
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_PorTipoYProveedorConAND(t *testing.T) {
	got := catalog.Filter(catalogoDePrueba(), catalog.SearchSpec{
		Type:     "Informática",
		Supplier: "TechSupply",
	})
	assert.Len(t, got, 2)

	// AND con un proveedor que no vende ese tipo → vacío
	got = catalog.Filter(catalogoDePrueba(), catalog.SearchSpec{
		Type:     "Informática",
		Supplier: "Acme",
	})
	assert.Empty(t, got)
}

func TestFilter_PorEstadoDeStock(t *testing.T) {
	agotados := catalog.Filter(catalogoDePrueba(), catalog.SearchSpec{StockStatus: stock.StatusOutOfStock})
	require.Len(t, agotados, 1)
	assert.Equal(t, "Blue Shirt", agotados[0].Name)

	bajos := catalog.Filter(catalogoDePrueba(), catalog.SearchSpec{StockStatus: stock.StatusLowStock})
	require.Len(t, bajos, 1)
	assert.Equal(t, "Laptop Pro 15", bajos[0].Name)
}

func TestFilter_RangoDePrecioInclusivo(t *testing.T) {
	got := catalog.Filter(catalogoDePrueba(), catalog.SearchSpec{MinPrice: "25", MaxPrice: "30"})
	require.Len(t, got, 2)
	assert.Equal(t, "Red Shirt Large", got[0].Name)
	assert.Equal(t, "Blue Shirt", got[1].Name)
}

// Límite no numérico → se trata como ausente, nunca como error.
func TestFilter_LimiteDePrecioNoNumericoSeIgnora(t *testing.T) {
	got := catalog.Filter(catalogoDePrueba(), catalog.SearchSpec{MinPrice: "abc", MaxPrice: "10"})
	require.Len(t, got, 1)
	assert.Equal(t, "Cable USB-C", got[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades del motor
// ──────────────────────────────────────────────────────────────────────────────

// Especificación vacía: identidad sobre la colección de entrada.
func TestFilter_SpecVaciaDevuelveTodo(t *testing.T) {
	in := catalogoDePrueba()
	got := catalog.Filter(in, catalog.SearchSpec{})
	assert.Equal(t, in, got)
}

// IsEmpty gobierna el atajo de identidad de Filter: restricciones vacías o
// inefectivas (espacios, límites de precio no numéricos) cuentan como ausentes.
func TestSearchSpec_IsEmpty(t *testing.T) {
	assert.True(t, catalog.SearchSpec{}.IsEmpty())
	assert.True(t, catalog.SearchSpec{Text: "   ", MinPrice: "abc", MaxPrice: ""}.IsEmpty())
	assert.False(t, catalog.SearchSpec{Type: "Ropa"}.IsEmpty())
	assert.False(t, catalog.SearchSpec{MaxPrice: "30"}.IsEmpty())
}

// Idempotencia: filtrar un resultado ya filtrado con el mismo spec no cambia nada.
func TestFilter_EsIdempotente(t *testing.T) {
	spec := catalog.SearchSpec{Text: "shirt", MinPrice: "20"}
	once := catalog.Filter(catalogoDePrueba(), spec)
	twice := catalog.Filter(once, spec)
	assert.Equal(t, once, twice)
}

func TestFilter_NoMutaLaEntrada(t *testing.T) {
	in := catalogoDePrueba()
	_ = catalog.Filter(in, catalog.SearchSpec{Text: "laptop"})
	assert.Equal(t, catalogoDePrueba(), in, "la colección de entrada debe quedar intacta")
}

func TestFilter_ColeccionVacia(t *testing.T) {
	got := catalog.Filter(nil, catalog.SearchSpec{Text: "algo"})
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ordenación
// ──────────────────────────────────────────────────────────────────────────────

func TestSort_PorPrecioAscendente(t *testing.T) {
	got := catalog.Sort(catalogoDePrueba(), catalog.SortPrice)
	require.Len(t, got, 4)
	assert.Equal(t, "Cable USB-C", got[0].Name)
	assert.Equal(t, "Laptop Pro 15", got[3].Name)
}

func TestSort_PorNombreIgnorandoMayusculas(t *testing.T) {
	got := catalog.Sort(catalogoDePrueba(), catalog.SortName)
	assert.Equal(t, "Blue Shirt", got[0].Name)
}

func TestSort_PorStockTotal(t *testing.T) {
	got := catalog.Sort(catalogoDePrueba(), catalog.SortStock)
	assert.Equal(t, "Blue Shirt", got[0].Name, "el agotado va primero")
	assert.Equal(t, "Cable USB-C", got[3].Name)
}

func TestSort_SinClaveNoReordena(t *testing.T) {
	in := catalogoDePrueba()
	got := catalog.Sort(in, catalog.SortNone)
	assert.Equal(t, in, got)
}
