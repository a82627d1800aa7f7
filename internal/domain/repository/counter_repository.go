package repository

import "github.com/sanmartincomanda/inventario/internal/domain/entity"

// CounterRepository define el puerto de los consecutivos por sucursal.
type CounterRepository interface {
	// Next incrementa y devuelve el consecutivo del tipo de documento
	// (entrada | salida). Debe ejecutarse con un handle transaccional: dos
	// llamadores concurrentes sobre la misma (sucursal, tipo) reciben
	// valores distintos y consecutivos, sin huecos ni duplicados.
	Next(branchID, docType string) (int, error)
	// Get devuelve el contador actual (ceros si la sucursal aún no tiene).
	Get(branchID string) (*entity.BranchCounter, error)
}
