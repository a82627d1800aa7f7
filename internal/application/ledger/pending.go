package ledger

import (
	"context"

	"github.com/sanmartincomanda/inventario/internal/domain"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

// PendingTransfersUseCase expone los traspasos pendientes de aprobar de una
// sucursal, como listado puntual o como suscripción en tiempo real.
type PendingTransfersUseCase struct {
	movRepo  repository.MovementRepository
	listener PendingListener
}

// NewPendingTransfersUseCase construye el caso de uso.
func NewPendingTransfersUseCase(movRepo repository.MovementRepository, listener PendingListener) *PendingTransfersUseCase {
	return &PendingTransfersUseCase{movRepo: movRepo, listener: listener}
}

// List devuelve los traspasos pendientes de aprobar en la sucursal.
func (uc *PendingTransfersUseCase) List(ctx context.Context, branchID string) ([]*entity.Movement, error) {
	if branchID == "" {
		return nil, domain.ErrNoBranch
	}
	return uc.movRepo.ListPendingTransfers(branchID)
}

// Subscription es una suscripción con dueño explícito: quien la abre es
// responsable de llamar Close al terminar. C entrega el conjunto pendiente
// completo en cada cambio (y una vez al inicio) y se cierra tras Close o al
// cancelar el contexto de Subscribe.
type Subscription struct {
	C    <-chan []*entity.Movement
	stop func()
}

// Close libera la suscripción. Es seguro llamarla más de una vez.
func (s *Subscription) Close() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}

// Subscribe abre una suscripción a los traspasos pendientes de la sucursal.
func (uc *PendingTransfersUseCase) Subscribe(ctx context.Context, branchID string) (*Subscription, error) {
	if branchID == "" {
		return nil, domain.ErrNoBranch
	}

	wake, stop, err := uc.listener.Listen(ctx, branchID)
	if err != nil {
		return nil, err
	}

	out := make(chan []*entity.Movement, 1)
	go func() {
		defer close(out)

		// Emisión inicial con el estado actual.
		if pending, err := uc.movRepo.ListPendingTransfers(branchID); err == nil {
			select {
			case out <- pending:
			case <-ctx.Done():
				return
			}
		}

		for range wake {
			pending, err := uc.movRepo.ListPendingTransfers(branchID)
			if err != nil {
				continue // el siguiente aviso vuelve a consultar
			}
			select {
			case out <- pending:
			case <-ctx.Done():
				return
			}
		}
	}()

	return &Subscription{C: out, stop: stop}, nil
}
