package repository

import "github.com/sanmartincomanda/inventario/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(u *entity.User) error
	// GetByEmail devuelve el usuario (nil si no existe).
	GetByEmail(email string) (*entity.User, error)
}
