package repository

import "github.com/sanmartincomanda/inventario/internal/domain/entity"

// BranchRepository define el puerto de persistencia para sucursales.
type BranchRepository interface {
	Create(b *entity.Branch) error
	// GetByID devuelve la sucursal (nil si no existe).
	GetByID(id string) (*entity.Branch, error)
	// GetByName busca por nombre sin distinguir mayúsculas (nil si no existe).
	GetByName(name string) (*entity.Branch, error)
	List() ([]*entity.Branch, error)
}
