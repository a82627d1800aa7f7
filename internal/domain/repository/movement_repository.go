package repository

import (
	"time"

	"github.com/sanmartincomanda/inventario/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para entradas y salidas.
type MovementRepository interface {
	// Create persiste el movimiento con sus líneas.
	Create(m *entity.Movement) error
	// GetByID obtiene un movimiento de la sucursal (nil si no existe).
	GetByID(branchID, id string) (*entity.Movement, error)
	// GetForUpdate obtiene el movimiento bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(branchID, id string) (*entity.Movement, error)
	// ListByType lista movimientos de un tipo en un rango de fechas (DATE inclusivo).
	ListByType(branchID, movType string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	// ListPendingTransfers lista las salidas de traspaso pendientes de aprobar
	// en la sucursal (los espejos que recibe la sucursal destino).
	ListPendingTransfers(branchID string) ([]*entity.Movement, error)
	// MarkTransferApproved marca aprobadas todas las filas del traspaso
	// (salida origen y espejo destino comparten transfer_id).
	MarkTransferApproved(transferID, receivedBy string, at time.Time) error
	// AnnouncePending notifica a los suscriptores de la sucursal que hay un
	// traspaso pendiente nuevo. En PostgreSQL: pg_notify dentro de la
	// transacción, entregado al hacer commit.
	AnnouncePending(branchID, movementID string) error
}
