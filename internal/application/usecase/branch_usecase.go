package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sanmartincomanda/inventario/internal/domain"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

// BranchUseCase administra el alta y la consulta de sucursales.
type BranchUseCase struct {
	branchRepo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(branchRepo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo}
}

// Create registra una sucursal. El nombre es único sin distinguir
// mayúsculas: una salida lo usa para resolver si su destino es un traspaso.
func (uc *BranchUseCase) Create(ctx context.Context, name string) (*entity.Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.branchRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	branch := &entity.Branch{
		ID:   uuid.New().String(),
		Name: name,
	}
	if err := uc.branchRepo.Create(branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// List lista todas las sucursales.
func (uc *BranchUseCase) List(ctx context.Context) ([]*entity.Branch, error) {
	return uc.branchRepo.List()
}

// Get devuelve una sucursal por id.
func (uc *BranchUseCase) Get(ctx context.Context, id string) (*entity.Branch, error) {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return branch, nil
}
