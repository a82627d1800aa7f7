package entity

import "time"

// Tipos de contraparte de un movimiento.
const (
	CounterpartyProveedor = "proveedor" // origen de una entrada
	CounterpartyDestino   = "destino"   // destino de una salida
)

// Counterparty es un proveedor o destino registrado en una sucursal.
// Se deduplica por nombre sin distinguir mayúsculas.
type Counterparty struct {
	ID        string
	BranchID  string
	Kind      string // proveedor | destino
	Name      string
	CreatedAt time.Time
}
