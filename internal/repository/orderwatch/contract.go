//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderwatch_test
package orderwatch

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	ListDispatchable(ctx context.Context, city string) ([]entities.Order, error)
}

// Listener блокируется, пока соединение живо. onReady вызывается после подписки на канал,
// onNotify - на каждое уведомление с payload.
type Listener interface {
	Listen(ctx context.Context, channel string, onReady func(), onNotify func(payload string)) error
}

type watcherLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
