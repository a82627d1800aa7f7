package entity

import "time"

// BranchCounter mantiene los consecutivos de documentos de una sucursal.
// Entrada y Salida avanzan de forma independiente; ambos inician en 0 y solo
// se incrementan dentro de una transacción atómica del almacén.
type BranchCounter struct {
	BranchID  string
	Entrada   int
	Salida    int
	UpdatedAt time.Time
}
