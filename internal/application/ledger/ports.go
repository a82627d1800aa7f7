package ledger

import (
	"context"

	"github.com/sanmartincomanda/inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La asignación del consecutivo y la escritura
// del movimiento comparten la transacción: ningún movimiento queda persistido
// con un folio que no fue realmente asignado, ni al revés.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		counterRepo repository.CounterRepository,
	) error) error
}

// PendingListener despierta a un suscriptor cada vez que llega un traspaso
// pendiente nuevo para la sucursal. El canal se cierra al cancelar el
// contexto o al invocar la función de cierre devuelta.
type PendingListener interface {
	Listen(ctx context.Context, branchID string) (wake <-chan struct{}, stop func(), err error)
}
