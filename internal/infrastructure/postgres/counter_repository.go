package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo consecutivos por sucursal sobre PostgreSQL.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// Next incrementa y devuelve el consecutivo del tipo de documento en una sola
// sentencia atómica. El upsert bloquea la fila del contador hasta el commit,
// así dos registros concurrentes del mismo tipo se serializan sin huecos.
func (r *CounterRepo) Next(branchID, docType string) (int, error) {
	if docType != entity.MovementTypeEntrada && docType != entity.MovementTypeSalida {
		return 0, fmt.Errorf("tipo de documento desconocido: %q", docType)
	}
	// docType solo puede ser entrada | salida, validado arriba.
	query := fmt.Sprintf(`
		INSERT INTO branch_counters (branch_id, %[1]s, updated_at)
		VALUES ($1, 1, now())
		ON CONFLICT (branch_id)
		DO UPDATE SET %[1]s = branch_counters.%[1]s + 1, updated_at = now()
		RETURNING %[1]s`, docType)

	var seq int
	if err := r.q.QueryRow(context.Background(), query, branchID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next %s seq: %w", docType, err)
	}
	return seq, nil
}

// Get devuelve el contador actual (ceros si la sucursal aún no tiene).
func (r *CounterRepo) Get(branchID string) (*entity.BranchCounter, error) {
	query := `
		SELECT branch_id, entrada, salida, updated_at
		FROM branch_counters WHERE branch_id = $1`
	var c entity.BranchCounter
	err := r.q.QueryRow(context.Background(), query, branchID).Scan(
		&c.BranchID, &c.Entrada, &c.Salida, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.BranchCounter{BranchID: branchID}, nil
		}
		return nil, fmt.Errorf("get counter: %w", err)
	}
	return &c, nil
}
