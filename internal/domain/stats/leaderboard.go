// Package stats contiene el motor de agregación de estadísticas: los totales
// derivados del catálogo y los rankings top-3 de movimientos.
package stats

import (
	"sort"

	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
)

// maxLeaderboardEntries tamaño acotado de cada ranking de movimientos.
const maxLeaderboardEntries = 3

// Record registra un movimiento para productName sobre el ranking dado y
// devuelve el ranking actualizado: incrementa la entrada existente con ese
// nombre exacto o añade {name, 1}, reordena descendente por count (orden
// estable: los empates conservan su orden de llegada) y trunca a 3 entradas.
// No muta el slice de entrada. Los counts solo crecen: no existe operación
// de decremento.
func Record(board []entity.ProductStat, productName string) []entity.ProductStat {
	out := make([]entity.ProductStat, len(board))
	copy(out, board)

	found := false
	for i := range out {
		if out[i].Name == productName {
			out[i].Count++
			found = true
			break
		}
	}
	if !found {
		out = append(out, entity.ProductStat{Name: productName, Count: 1})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if len(out) > maxLeaderboardEntries {
		out = out[:maxLeaderboardEntries]
	}
	return out
}
