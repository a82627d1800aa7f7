package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo catálogo de SKUs por sucursal sobre PostgreSQL.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// Upsert inserta o actualiza SKUs por código canónico.
func (r *CatalogRepo) Upsert(branchID string, skus []*entity.SKU) error {
	query := `
		INSERT INTO catalog_skus (branch_id, code, name, unit, active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (branch_id, code)
		DO UPDATE SET name = EXCLUDED.name, unit = EXCLUDED.unit, active = EXCLUDED.active`
	for _, s := range skus {
		if _, err := r.q.Exec(context.Background(), query,
			branchID, s.Code, s.Name, s.Unit, s.Active,
		); err != nil {
			return fmt.Errorf("upsert sku %s: %w", s.Code, err)
		}
	}
	return nil
}

// Get devuelve el SKU (nil si no existe en el catálogo de la sucursal).
func (r *CatalogRepo) Get(branchID, code string) (*entity.SKU, error) {
	query := `SELECT code, name, unit, active FROM catalog_skus WHERE branch_id = $1 AND code = $2`
	var s entity.SKU
	err := r.q.QueryRow(context.Background(), query, branchID, code).Scan(
		&s.Code, &s.Name, &s.Unit, &s.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return &s, nil
}

// List lista el catálogo ordenado por código.
func (r *CatalogRepo) List(branchID string, includeInactive bool) ([]*entity.SKU, error) {
	query := `SELECT code, name, unit, active FROM catalog_skus WHERE branch_id = $1`
	if !includeInactive {
		query += ` AND active`
	}
	query += ` ORDER BY code`

	rows, err := r.q.Query(context.Background(), query, branchID)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	defer rows.Close()

	var list []*entity.SKU
	for rows.Next() {
		var s entity.SKU
		if err := rows.Scan(&s.Code, &s.Name, &s.Unit, &s.Active); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Deactivate desactiva un SKU. Los SKUs nunca se eliminan.
func (r *CatalogRepo) Deactivate(branchID, code string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE catalog_skus SET active = false WHERE branch_id = $1 AND code = $2`,
		branchID, code)
	if err != nil {
		return fmt.Errorf("deactivate sku: %w", err)
	}
	return nil
}
