// Package barcode valida códigos de barras de producto antes de consultar el
// backend (formatos EAN-8, UPC-A, EAN-13 y GTIN-14).
package barcode

import "strings"

// validLengths longitudes aceptadas: EAN-8, UPC-A, EAN-13, GTIN-14.
var validLengths = map[int]bool{8: true, 12: true, 13: true, 14: true}

// IsValid indica si code (tras recortar espacios) es un código de barras
// plausible: solo dígitos y longitud 8, 12, 13 o 14.
func IsValid(code string) bool {
	code = strings.TrimSpace(code)
	if !validLengths[len(code)] {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Normalize recorta espacios alrededor del código escaneado o tecleado.
func Normalize(code string) string {
	return strings.TrimSpace(code)
}
