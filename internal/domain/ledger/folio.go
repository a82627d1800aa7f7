// Package ledger contiene las reglas puras del libro de movimientos:
// formato de folios y prefijos por tipo de documento.
package ledger

import (
	"fmt"

	"github.com/sanmartincomanda/inventario/internal/domain/entity"
)

// Prefijos de folio por tipo de documento.
const (
	PrefixEntrada = "E"
	PrefixSalida  = "S"
)

// DefaultPad ancho por defecto del consecutivo en el folio (E-0001).
const DefaultPad = 4

// Folio construye el folio legible de un documento: <prefijo>-<consecutivo
// con ceros a la izquierda>. pad <= 0 usa DefaultPad.
func Folio(prefix string, seq, pad int) string {
	if pad <= 0 {
		pad = DefaultPad
	}
	return fmt.Sprintf("%s-%0*d", prefix, pad, seq)
}

// PrefixFor devuelve el prefijo de folio del tipo de movimiento.
func PrefixFor(movType string) string {
	if movType == entity.MovementTypeEntrada {
		return PrefixEntrada
	}
	return PrefixSalida
}
