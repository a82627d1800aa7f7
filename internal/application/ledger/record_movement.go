package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sanmartincomanda/inventario/internal/domain"
	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	domledger "github.com/sanmartincomanda/inventario/internal/domain/ledger"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

// RecordMovementUseCase registra entradas y salidas: valida el borrador,
// asigna el folio vía el contador transaccional y persiste el movimiento.
// Una salida cuyo destino resuelve a otra sucursal se registra como traspaso
// pendiente de aprobación, con un espejo en la sucursal destino.
type RecordMovementUseCase struct {
	txRunner    TxRunner
	branchRepo  repository.BranchRepository
	catalogRepo repository.CatalogRepository
	folioPad    int
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(
	txRunner TxRunner,
	branchRepo repository.BranchRepository,
	catalogRepo repository.CatalogRepository,
	folioPad int,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner:    txRunner,
		branchRepo:  branchRepo,
		catalogRepo: catalogRepo,
		folioPad:    folioPad,
	}
}

// LineDraft línea de un borrador: SKU y pesos de sus cajas.
type LineDraft struct {
	SKU     string
	Weights []decimal.Decimal
	Notes   string
}

// MovementDraft borrador de entrada o salida enviado por el llamador.
// Counterparty: proveedor en entradas, destino en salidas.
type MovementDraft struct {
	Date         string // YYYY-MM-DD; vacío = hoy
	Counterparty string
	Actor        string
	Observation  string
	Lines        []LineDraft
}

// RecordResult resultado del registro. Warnings lista problemas de calidad
// de datos (SKU desconocido o inactivo) que no bloquean la operación.
type RecordResult struct {
	ID       string
	Folio    string
	Status   string
	Warnings []string
}

// RecordEntry registra una entrada en la sucursal.
func (uc *RecordMovementUseCase) RecordEntry(ctx context.Context, branchID string, draft MovementDraft) (*RecordResult, error) {
	return uc.record(ctx, branchID, entity.MovementTypeEntrada, draft)
}

// RecordExit registra una salida en la sucursal. Si el destino resuelve a
// otra sucursal, la salida queda pendiente_aprobacion y se crea el espejo en
// el destino; si no, queda completada.
func (uc *RecordMovementUseCase) RecordExit(ctx context.Context, branchID string, draft MovementDraft) (*RecordResult, error) {
	return uc.record(ctx, branchID, entity.MovementTypeSalida, draft)
}

func (uc *RecordMovementUseCase) record(ctx context.Context, branchID, movType string, draft MovementDraft) (*RecordResult, error) {
	if branchID == "" {
		return nil, domain.ErrNoBranch
	}
	counterparty := strings.TrimSpace(draft.Counterparty)
	if counterparty == "" {
		return nil, domain.ErrInvalidInput
	}

	date, err := parseDate(draft.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	// Filtrado de líneas: sin SKU o sin peso total > 0 se descartan en
	// silencio; si no sobrevive ninguna se rechaza todo antes de asignar folio.
	lines := buildLines(draft.Lines)
	if len(lines) == 0 {
		return nil, domain.ErrNoValidLines
	}

	warnings := uc.catalogWarnings(branchID, lines)

	// Una salida es traspaso si el destino resuelve a otra sucursal conocida.
	var destBranch *entity.Branch
	if movType == entity.MovementTypeSalida {
		destBranch = uc.resolveBranch(counterparty)
		if destBranch != nil && destBranch.ID == branchID {
			destBranch = nil // salida hacia la propia sucursal no es traspaso
		}
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:           uuid.New().String(),
		BranchID:     branchID,
		Type:         movType,
		Date:         date,
		Counterparty: counterparty,
		Actor:        strings.TrimSpace(draft.Actor),
		Observation:  strings.TrimSpace(draft.Observation),
		Status:       entity.StatusCompleted,
		Lines:        lines,
		CreatedAt:    now,
	}
	if destBranch != nil {
		mov.Transfer = true
		mov.Status = entity.StatusPendingApproval
		mov.TransferID = uuid.New().String()
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		counterRepo repository.CounterRepository,
	) error {
		seq, err := counterRepo.Next(branchID, movType)
		if err != nil {
			return fmt.Errorf("asignar consecutivo: %w", err)
		}
		mov.Seq = seq
		mov.Folio = domledger.Folio(domledger.PrefixFor(movType), seq, uc.folioPad)

		if err := movRepo.Create(mov); err != nil {
			return err
		}

		if destBranch == nil {
			return nil
		}

		// Espejo en la colección de salidas del destino: mismo contenido y
		// folio, sin consumir consecutivo del destino; es lo que la sucursal
		// destino ve como "pendiente de aprobar".
		mirror := cloneForMirror(mov, destBranch.ID)
		if err := movRepo.Create(mirror); err != nil {
			return err
		}
		return movRepo.AnnouncePending(destBranch.ID, mirror.ID)
	})
	if err != nil {
		return nil, err
	}

	return &RecordResult{
		ID:       mov.ID,
		Folio:    mov.Folio,
		Status:   mov.Status,
		Warnings: warnings,
	}, nil
}

// buildLines canoniza SKUs, recalcula cantidades y descarta líneas inválidas.
func buildLines(drafts []LineDraft) []entity.MovementLine {
	lines := make([]entity.MovementLine, 0, len(drafts))
	for _, d := range drafts {
		sku := entity.CanonicalSKU(d.SKU)
		if sku == "" {
			continue
		}
		total := decimal.Zero
		weights := make([]decimal.Decimal, 0, len(d.Weights))
		for _, w := range d.Weights {
			weights = append(weights, w)
			total = total.Add(w)
		}
		if !total.IsPositive() {
			continue
		}
		lines = append(lines, entity.MovementLine{
			ID:       uuid.New().String(),
			Position: len(lines),
			SKU:      sku,
			Quantity: total,
			Weights:  weights,
			Notes:    strings.TrimSpace(d.Notes),
		})
	}
	return lines
}

// catalogWarnings revisa los SKUs contra el catálogo de la sucursal.
// Un SKU desconocido o inactivo es una advertencia, no un rechazo.
func (uc *RecordMovementUseCase) catalogWarnings(branchID string, lines []entity.MovementLine) []string {
	var warnings []string
	for i := range lines {
		sku, err := uc.catalogRepo.Get(branchID, lines[i].SKU)
		if err != nil {
			continue // la revisión de catálogo nunca bloquea el registro
		}
		switch {
		case sku == nil:
			warnings = append(warnings, fmt.Sprintf("SKU %q no existe en el catálogo", lines[i].SKU))
		case !sku.Active:
			warnings = append(warnings, fmt.Sprintf("SKU %q está desactivado", lines[i].SKU))
		}
	}
	return warnings
}

// resolveBranch busca el destino como id o nombre de sucursal.
func (uc *RecordMovementUseCase) resolveBranch(destination string) *entity.Branch {
	if b, err := uc.branchRepo.GetByID(destination); err == nil && b != nil {
		return b
	}
	if b, err := uc.branchRepo.GetByName(destination); err == nil && b != nil {
		return b
	}
	return nil
}

func cloneForMirror(mov *entity.Movement, destBranchID string) *entity.Movement {
	mirror := *mov
	mirror.ID = uuid.New().String()
	mirror.BranchID = destBranchID
	mirror.Seq = 0
	mirror.OriginBranchID = mov.BranchID
	mirror.Lines = make([]entity.MovementLine, len(mov.Lines))
	for i := range mov.Lines {
		mirror.Lines[i] = mov.Lines[i]
		mirror.Lines[i].ID = uuid.New().String()
	}
	return &mirror
}

func parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}
