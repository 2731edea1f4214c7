package orderwatch

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgListener держит одно выделенное соединение пула под LISTEN.
type PgListener struct {
	pool *pgxpool.Pool
}

func NewPgListener(pool *pgxpool.Pool) *PgListener {
	return &PgListener{pool: pool}
}

func (l *PgListener) Listen(ctx context.Context, channel string, onReady func(), onNotify func(payload string)) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	defer func() {
		// соединение с активным LISTEN нельзя возвращать в пул
		_ = conn.Conn().Close(context.Background())
		conn.Release()
	}()

	_, err = conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize())
	if err != nil {
		return fmt.Errorf("listen %s: %w", channel, err)
	}
	onReady()

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		onNotify(notification.Payload)
	}
}
