package entity

import "time"

// Branch representa una sucursal (tienda, bodega o planta) con catálogo,
// contadores y movimientos propios.
type Branch struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
