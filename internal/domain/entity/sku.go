package entity

import "strings"

// SKU representa un artículo del catálogo de una sucursal.
// Nunca se elimina: se desactiva con Active=false.
type SKU struct {
	Code   string // forma canónica en mayúsculas
	Name   string
	Unit   string // unidad de medida (LB, caja, unidad)
	Active bool
}

// CanonicalSKU normaliza un código de SKU a su forma canónica.
func CanonicalSKU(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
