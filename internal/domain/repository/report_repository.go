package repository

import (
	"time"

	"github.com/sanmartincomanda/inventario/internal/domain/entity"
)

// ReportRepository define el puerto de consultas consolidadas del libro.
type ReportRepository interface {
	// SKUDifference agrega por SKU las cantidades de entradas y salidas en el
	// rango de fechas [from, to] y devuelve la diferencia, ordenado por SKU.
	SKUDifference(branchID string, from, to time.Time) ([]*entity.SKUDelta, error)
}
