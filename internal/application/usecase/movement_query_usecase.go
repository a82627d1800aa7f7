package usecase

import (
	"context"
	"time"

	"github.com/sanmartincomanda/inventario/internal/domain"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

// MovementQueryUseCase resuelve las consultas de solo lectura del libro de
// movimientos. El registro y la aprobación viven en application/ledger.
type MovementQueryUseCase struct {
	movRepo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movRepo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo}
}

// ListFilter acota una consulta de movimientos.
type ListFilter struct {
	Type   string // entrada | salida
	From   string // YYYY-MM-DD, opcional
	To     string // YYYY-MM-DD, opcional
	Limit  int
	Offset int
}

// List lista los movimientos de la sucursal según el filtro.
func (uc *MovementQueryUseCase) List(ctx context.Context, branchID string, f ListFilter) ([]*entity.Movement, error) {
	if branchID == "" {
		return nil, domain.ErrNoBranch
	}
	if f.Type != entity.MovementTypeEntrada && f.Type != entity.MovementTypeSalida {
		return nil, domain.ErrInvalidInput
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}

	var from, to *time.Time
	if t, err := parseDateOr(f.From, time.Time{}); err != nil {
		return nil, domain.ErrInvalidInput
	} else if !t.IsZero() {
		from = &t
	}
	if t, err := parseDateOr(f.To, time.Time{}); err != nil {
		return nil, domain.ErrInvalidInput
	} else if !t.IsZero() {
		to = &t
	}
	return uc.movRepo.ListByType(branchID, f.Type, from, to, f.Limit, f.Offset)
}

// Get devuelve un movimiento de la sucursal.
func (uc *MovementQueryUseCase) Get(ctx context.Context, branchID, id string) (*entity.Movement, error) {
	if branchID == "" {
		return nil, domain.ErrNoBranch
	}
	mov, err := uc.movRepo.GetByID(branchID, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}
