package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sanmartincomanda/inventario/internal/domain"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo sucursales sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create persiste la sucursal.
func (r *BranchRepo) Create(b *entity.Branch) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO branches (id, name, created_at) VALUES ($1, $2, now())`,
		b.ID, b.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create branch: %w", err)
	}
	return nil
}

// GetByID devuelve la sucursal (nil si no existe).
func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	return r.getWhere(`id = $1`, id)
}

// GetByName busca por nombre sin distinguir mayúsculas (nil si no existe).
func (r *BranchRepo) GetByName(name string) (*entity.Branch, error) {
	return r.getWhere(`lower(name) = lower($1)`, name)
}

func (r *BranchRepo) getWhere(cond string, arg any) (*entity.Branch, error) {
	var b entity.Branch
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM branches WHERE `+cond, arg).
		Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// List lista todas las sucursales ordenadas por nombre.
func (r *BranchRepo) List() ([]*entity.Branch, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at FROM branches ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
