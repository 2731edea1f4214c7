//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
)

// StatusApplier применяет статус от внешней системы, если заказ в одном из allowedFrom.
type StatusApplier interface {
	ApplyExternalStatus(
		ctx context.Context,
		orderID string,
		status entities.OrderStatus,
		allowedFrom []entities.OrderStatus,
	) (*entities.Order, error)
}

type EventPublisher interface {
	PublishDeliveryEvent(ctx context.Context, event entities.DeliveryEvent) error
}

type (
	ExecuteFn      func(ctx context.Context, orderID string) (*entities.Order, error)
	HandlerFactory interface {
		GetHandler(status entities.OrderStatus) (ExecuteFn, error)
	}
)
