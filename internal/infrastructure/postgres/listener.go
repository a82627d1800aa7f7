package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanmartincomanda/inventario/internal/application/ledger"
	"github.com/sanmartincomanda/inventario/pkg/logger"
)

var _ ledger.PendingListener = (*PendingListener)(nil)

// PendingListener escucha el canal de pg_notify de traspasos pendientes.
// Cada suscripción dedica una conexión del pool a LISTEN; al cerrar se
// devuelve (o destruye, si la cancelación la dejó inservible).
type PendingListener struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewPendingListener construye el listener sobre el pool.
func NewPendingListener(pool *pgxpool.Pool, log *logger.Logger) *PendingListener {
	return &PendingListener{pool: pool, log: log}
}

// Listen abre una conexión dedicada, ejecuta LISTEN y reenvía un despertar
// por cada aviso cuyo payload sea la sucursal pedida. El canal tiene buffer
// de uno: avisos acumulados mientras el suscriptor consulta colapsan en un
// solo despertar, la consulta siguiente trae el conjunto completo.
func (l *PendingListener) Listen(ctx context.Context, branchID string) (<-chan struct{}, func(), error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("acquire listen conn: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+NotifyChannel); err != nil {
		conn.Release()
		return nil, nil, fmt.Errorf("listen %s: %w", NotifyChannel, err)
	}

	lctx, cancel := context.WithCancel(ctx)
	wake := make(chan struct{}, 1)

	go func() {
		defer close(wake)
		defer conn.Release()
		for {
			n, err := conn.Conn().WaitForNotification(lctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					l.log.Warn().Err(err).Str("branch_id", branchID).
						Msg("listener de traspasos pendientes terminó con error")
				}
				return
			}
			if n.Payload != branchID {
				continue
			}
			select {
			case wake <- struct{}{}:
			default: // ya hay un despertar pendiente
			}
		}
	}()

	var once sync.Once
	stop := func() { once.Do(cancel) }
	return wake, stop, nil
}
