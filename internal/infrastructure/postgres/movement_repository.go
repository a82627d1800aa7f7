package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

// NotifyChannel es el canal de pg_notify por el que se anuncian los
// traspasos pendientes nuevos. El payload es el branch_id destino.
const NotifyChannel = "traspasos_pendientes"

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `
	id, branch_id, type, seq, folio, date, counterparty, actor, observation,
	transfer, status, origin_branch_id, transfer_id, received_by, approved_at, created_at`

// Create persiste el movimiento con sus líneas.
func (r *MovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, branch_id, type, seq, folio, date, counterparty, actor, observation,
			transfer, status, origin_branch_id, transfer_id, received_by, approved_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.BranchID, m.Type, m.Seq, m.Folio, m.Date, m.Counterparty, m.Actor, m.Observation,
		m.Transfer, m.Status, nullable(m.OriginBranchID), nullable(m.TransferID),
		nullable(m.ReceivedBy), m.ApprovedAt, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}

	lineQuery := `
		INSERT INTO movement_lines (id, movement_id, position, sku, quantity, weights, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i := range m.Lines {
		l := &m.Lines[i]
		if l.ID == "" {
			l.ID = uuid.New().String()
		}
		if _, err := r.q.Exec(context.Background(), lineQuery,
			l.ID, m.ID, l.Position, l.SKU, l.Quantity, l.Weights, l.Notes,
		); err != nil {
			return fmt.Errorf("create movement line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un movimiento de la sucursal con sus líneas.
func (r *MovementRepo) GetByID(branchID, id string) (*entity.Movement, error) {
	return r.get(branchID, id, "")
}

// GetForUpdate obtiene el movimiento bloqueando la fila. Solo tiene sentido
// dentro de una transacción.
func (r *MovementRepo) GetForUpdate(branchID, id string) (*entity.Movement, error) {
	return r.get(branchID, id, " FOR UPDATE")
}

func (r *MovementRepo) get(branchID, id, suffix string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE branch_id = $1 AND id = $2` + suffix
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, branchID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if err := r.loadLines(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListByType lista movimientos de un tipo en un rango de fechas (DATE inclusivo).
func (r *MovementRepo) ListByType(branchID, movType string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE branch_id = $1 AND type = $2`
	args := []any{branchID, movType}
	pos := 3
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, seq DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	return r.list(query, args...)
}

// ListPendingTransfers lista los espejos de traspaso pendientes de aprobar
// que recibe la sucursal, del más antiguo al más reciente.
func (r *MovementRepo) ListPendingTransfers(branchID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements
		WHERE branch_id = $1 AND transfer AND origin_branch_id IS NOT NULL AND status = $2
		ORDER BY created_at`
	return r.list(query, branchID, entity.StatusPendingApproval)
}

// MarkTransferApproved marca aprobadas todas las filas del traspaso.
func (r *MovementRepo) MarkTransferApproved(transferID, receivedBy string, at time.Time) error {
	query := `
		UPDATE movements SET status = $1, received_by = $2, approved_at = $3
		WHERE transfer_id = $4 AND status = $5`
	_, err := r.q.Exec(context.Background(), query,
		entity.StatusApproved, receivedBy, at, transferID, entity.StatusPendingApproval)
	if err != nil {
		return fmt.Errorf("approve transfer: %w", err)
	}
	return nil
}

// AnnouncePending notifica por pg_notify; al ejecutarse dentro de la
// transacción, el aviso se entrega solo si hay commit.
func (r *MovementRepo) AnnouncePending(branchID, movementID string) error {
	_, err := r.q.Exec(context.Background(),
		`SELECT pg_notify($1, $2)`, NotifyChannel, branchID)
	if err != nil {
		return fmt.Errorf("announce pending transfer: %w", err)
	}
	return nil
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, m := range list {
		if err := r.loadLines(m); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *MovementRepo) loadLines(m *entity.Movement) error {
	query := `
		SELECT id, position, sku, quantity, weights, notes
		FROM movement_lines WHERE movement_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, m.ID)
	if err != nil {
		return fmt.Errorf("load movement lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l entity.MovementLine
		if err := rows.Scan(&l.ID, &l.Position, &l.SKU, &l.Quantity, &l.Weights, &l.Notes); err != nil {
			return fmt.Errorf("scan movement line: %w", err)
		}
		m.Lines = append(m.Lines, l)
	}
	return rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var originBranchID, transferID, receivedBy *string
	err := row.Scan(
		&m.ID, &m.BranchID, &m.Type, &m.Seq, &m.Folio, &m.Date, &m.Counterparty,
		&m.Actor, &m.Observation, &m.Transfer, &m.Status,
		&originBranchID, &transferID, &receivedBy, &m.ApprovedAt, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.OriginBranchID = deref(originBranchID)
	m.TransferID = deref(transferID)
	m.ReceivedBy = deref(receivedBy)
	return &m, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
