package barcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-movil/internal/domain/barcode"
)

func TestIsValid_LongitudesAceptadas(t *testing.T) {
	assert.True(t, barcode.IsValid("12345678"), "EAN-8")
	assert.True(t, barcode.IsValid("123456789012"), "UPC-A")
	assert.True(t, barcode.IsValid("4006381333931"), "EAN-13")
	assert.True(t, barcode.IsValid("12345678901234"), "GTIN-14")
}

func TestIsValid_LongitudesRechazadas(t *testing.T) {
	assert.False(t, barcode.IsValid(""))
	assert.False(t, barcode.IsValid("1234567"))
	assert.False(t, barcode.IsValid("123456789"))
	assert.False(t, barcode.IsValid("123456789012345"))
}

func TestIsValid_SoloDigitos(t *testing.T) {
	assert.False(t, barcode.IsValid("1234567a"))
	assert.False(t, barcode.IsValid("12 45678"))
	assert.False(t, barcode.IsValid("12345-78"))
}

// Los espacios alrededor se toleran: el escáner a veces los añade.
func TestIsValid_RecortaEspacios(t *testing.T) {
	assert.True(t, barcode.IsValid("  12345678  "))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "12345678", barcode.Normalize(" 12345678\n"))
}
