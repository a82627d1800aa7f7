package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

var _ repository.CounterpartyRepository = (*CounterpartyRepo)(nil)

// CounterpartyRepo proveedores y destinos de una sucursal sobre PostgreSQL.
type CounterpartyRepo struct {
	q Querier
}

// NewCounterpartyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCounterpartyRepository(q Querier) *CounterpartyRepo {
	return &CounterpartyRepo{q: q}
}

// Add inserta la contraparte si no existe otra del mismo tipo con el mismo
// nombre (sin distinguir mayúsculas); devuelve el id existente o el nuevo.
// El índice único sobre lower(name) resuelve la carrera entre dos inserciones.
func (r *CounterpartyRepo) Add(cp *entity.Counterparty) (string, error) {
	if id, err := r.findID(cp.BranchID, cp.Kind, cp.Name); err != nil {
		return "", err
	} else if id != "" {
		return id, nil
	}

	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO counterparties (id, branch_id, kind, name, created_at) VALUES ($1, $2, $3, $4, now())`,
		cp.ID, cp.BranchID, cp.Kind, cp.Name)
	if err != nil {
		if isUniqueViolation(err) {
			// Otro llamador ganó la carrera; devolver el suyo.
			return r.findID(cp.BranchID, cp.Kind, cp.Name)
		}
		return "", fmt.Errorf("add counterparty: %w", err)
	}
	return cp.ID, nil
}

func (r *CounterpartyRepo) findID(branchID, kind, name string) (string, error) {
	var id string
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM counterparties WHERE branch_id = $1 AND kind = $2 AND lower(name) = lower($3)`,
		branchID, kind, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("find counterparty: %w", err)
	}
	return id, nil
}

// List lista las contrapartes de un tipo ordenadas por nombre.
func (r *CounterpartyRepo) List(branchID, kind string) ([]*entity.Counterparty, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, branch_id, kind, name, created_at FROM counterparties
		 WHERE branch_id = $1 AND kind = $2 ORDER BY name`,
		branchID, kind)
	if err != nil {
		return nil, fmt.Errorf("list counterparties: %w", err)
	}
	defer rows.Close()

	var list []*entity.Counterparty
	for rows.Next() {
		var cp entity.Counterparty
		if err := rows.Scan(&cp.ID, &cp.BranchID, &cp.Kind, &cp.Name, &cp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan counterparty: %w", err)
		}
		list = append(list, &cp)
	}
	return list, rows.Err()
}
