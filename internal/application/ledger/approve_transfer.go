package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sanmartincomanda/inventario/internal/domain"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	domledger "github.com/sanmartincomanda/inventario/internal/domain/ledger"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

// ApproveTransferUseCase aplica la única transición del ciclo de un traspaso:
// pendiente_aprobacion -> aprobada. La aprobación y la entrada que genera son
// un todo o nada: un traspaso aprobado sin entrada correspondiente (o al
// revés) corrompería el libro en silencio.
type ApproveTransferUseCase struct {
	txRunner   TxRunner
	branchRepo repository.BranchRepository
	folioPad   int
}

// NewApproveTransferUseCase construye el caso de uso.
func NewApproveTransferUseCase(txRunner TxRunner, branchRepo repository.BranchRepository, folioPad int) *ApproveTransferUseCase {
	return &ApproveTransferUseCase{txRunner: txRunner, branchRepo: branchRepo, folioPad: folioPad}
}

// Approve aprueba la salida de traspaso pendiente en la sucursal receptora:
// bloquea la fila, marca aprobadas la salida origen y su espejo (comparten
// transfer_id), asigna consecutivo de entrada y crea la entrada con las
// líneas copiadas tal cual. Falla sin efectos parciales si el registro no
// existe o no está pendiente.
func (uc *ApproveTransferUseCase) Approve(ctx context.Context, branchID, exitID, receivedBy string) error {
	if branchID == "" {
		return domain.ErrNoBranch
	}
	receivedBy = strings.TrimSpace(receivedBy)
	if receivedBy == "" {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		counterRepo repository.CounterRepository,
	) error {
		mov, err := movRepo.GetForUpdate(branchID, exitID)
		if err != nil {
			return err
		}
		// Solo el espejo que ve la sucursal receptora es aprobable; la
		// salida origen se marca vía el transfer_id compartido.
		if mov == nil || mov.Type != entity.MovementTypeSalida || !mov.Transfer || mov.OriginBranchID == "" {
			return domain.ErrNotFound
		}
		if mov.Status != entity.StatusPendingApproval {
			return domain.ErrConflict
		}

		now := time.Now()
		if err := movRepo.MarkTransferApproved(mov.TransferID, receivedBy, now); err != nil {
			return err
		}

		seq, err := counterRepo.Next(branchID, entity.MovementTypeEntrada)
		if err != nil {
			return fmt.Errorf("asignar consecutivo de entrada: %w", err)
		}

		entry := &entity.Movement{
			ID:           uuid.New().String(),
			BranchID:     branchID,
			Type:         entity.MovementTypeEntrada,
			Seq:          seq,
			Folio:        domledger.Folio(domledger.PrefixEntrada, seq, uc.folioPad),
			Date:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
			Counterparty: uc.originName(mov.OriginBranchID),
			Actor:        receivedBy,
			Observation:  fmt.Sprintf("Traspaso %s aprobado", mov.Folio),
			Status:       entity.StatusCompleted,
			TransferID:   mov.TransferID,
			Lines:        copyLines(mov.Lines),
			CreatedAt:    now,
		}
		return movRepo.Create(entry)
	})
}

// originName deriva la contraparte de la entrada desde la sucursal origen.
func (uc *ApproveTransferUseCase) originName(originBranchID string) string {
	if originBranchID == "" {
		return "Traspaso"
	}
	if b, err := uc.branchRepo.GetByID(originBranchID); err == nil && b != nil {
		return "Traspaso de " + b.Name
	}
	return "Traspaso de " + originBranchID
}

func copyLines(lines []entity.MovementLine) []entity.MovementLine {
	out := make([]entity.MovementLine, len(lines))
	for i := range lines {
		out[i] = lines[i]
		out[i].ID = uuid.New().String()
	}
	return out
}
