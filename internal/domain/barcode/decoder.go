// Package barcode decodifica los códigos de peso de los dos dispositivos
// físicos soportados:
//
//   - Etiqueta San Martín: 54 dígitos (variante de 52), peso de 3 dígitos
//     en las posiciones 32..34 (1-based) con formato XX.Y libras.
//   - Etiqueta de báscula: 13 dígitos, peso de 4 dígitos en las posiciones
//     8..11 (1-based) con formato XX.YY libras.
//
// Las funciones son puras: sin efectos, sin pánicos; todo fallo se devuelve
// como error. El llamador es responsable de la pre-limpieza del escáner
// (ver CleanDigits).
package barcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotDigits input con caracteres no numéricos (incluye cadena vacía).
	ErrNotDigits = errors.New("código inválido: solo se aceptan dígitos")
	// ErrInvalidWeight el segmento decodificado no es un peso positivo.
	ErrInvalidWeight = errors.New("peso no válido")
)

// LengthError longitud de código distinta a la esperada.
type LengthError struct {
	Got  int
	Want []int
}

func (e *LengthError) Error() string {
	expected := make([]string, len(e.Want))
	for i, w := range e.Want {
		expected[i] = fmt.Sprintf("%d", w)
	}
	return fmt.Sprintf("longitud inválida (%d), se espera %s", e.Got, strings.Join(expected, " o "))
}

// CleanDigits elimina todo carácter no numérico (ruido del escáner:
// espacios, guiones, prefijos de teclado).
func CleanDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ExtractSanMartinWeight decodifica una etiqueta San Martín de 54 dígitos
// (o la variante de 52, con el campo desplazado dos posiciones a la
// izquierda). El trío de dígitos D1 D2 D3 se interpreta como D1D2.D3 libras.
func ExtractSanMartinWeight(code string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(code)
	if !isDigits(clean) {
		return decimal.Zero, ErrNotDigits
	}

	var start int
	switch len(clean) {
	case 54:
		start = 31
	case 52:
		start = 29
	default:
		return decimal.Zero, &LengthError{Got: len(clean), Want: []int{54, 52}}
	}

	return parseWeight(clean[start:start+3], 2)
}

// ExtractBasculaWeight decodifica una etiqueta de báscula de 13 dígitos.
// El cuarteto D1 D2 D3 D4 se interpreta como D1D2.D3D4 libras.
func ExtractBasculaWeight(code string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(code)
	if !isDigits(clean) {
		return decimal.Zero, ErrNotDigits
	}
	if len(clean) != 13 {
		return decimal.Zero, &LengthError{Got: len(clean), Want: []int{13}}
	}

	return parseWeight(clean[7:11], 2)
}

// parseWeight interpreta seg como un decimal con intDigits dígitos enteros
// y el resto fraccionarios. Un peso de exactamente 0 se rechaza: una caja
// sin peso es un error de lectura, no un dato.
func parseWeight(seg string, intDigits int) (decimal.Decimal, error) {
	if !isDigits(seg) {
		return decimal.Zero, ErrInvalidWeight
	}
	val, err := decimal.NewFromString(seg[:intDigits] + "." + seg[intDigits:])
	if err != nil || !val.IsPositive() {
		return decimal.Zero, ErrInvalidWeight
	}
	return val, nil
}
