package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas consolidadas del libro sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SKUDifference agrega por SKU las cantidades de entradas y salidas en
// [from, to]. Los espejos de traspaso (origin_branch_id no nulo) se excluyen:
// la salida cuenta en la sucursal origen y la entrada generada al aprobar
// cuenta en el destino, contar el espejo duplicaría la salida.
func (r *ReportRepo) SKUDifference(branchID string, from, to time.Time) ([]*entity.SKUDelta, error) {
	query := `
		SELECT l.sku,
		       COALESCE(SUM(l.quantity) FILTER (WHERE m.type = 'entrada'), 0) AS entradas,
		       COALESCE(SUM(l.quantity) FILTER (WHERE m.type = 'salida'), 0)  AS salidas
		FROM movement_lines l
		JOIN movements m ON m.id = l.movement_id
		WHERE m.branch_id = $1
		  AND m.origin_branch_id IS NULL
		  AND m.date BETWEEN $2 AND $3
		GROUP BY l.sku
		ORDER BY l.sku`

	rows, err := r.q.Query(context.Background(), query, branchID, from, to)
	if err != nil {
		return nil, fmt.Errorf("sku difference: %w", err)
	}
	defer rows.Close()

	var list []*entity.SKUDelta
	for rows.Next() {
		var d entity.SKUDelta
		if err := rows.Scan(&d.SKU, &d.Entradas, &d.Salidas); err != nil {
			return nil, fmt.Errorf("scan sku delta: %w", err)
		}
		d.Diferencia = d.Entradas.Sub(d.Salidas)
		list = append(list, &d)
	}
	return list, rows.Err()
}
