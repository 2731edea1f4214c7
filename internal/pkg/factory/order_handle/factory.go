package order_handle

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
)

type StatusHandlerFactory struct {
	applier order.StatusApplier
}

func NewStatusHandlerFactory(applier order.StatusApplier) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		applier: applier,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatus) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderAccepted:
		return f.acceptedHandler, nil
	case entities.OrderPreparing:
		return f.preparingHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) acceptedHandler(ctx context.Context, orderID string) (*entities.Order, error) {
	updated, err := f.applier.ApplyExternalStatus(ctx, orderID, entities.OrderAccepted,
		[]entities.OrderStatus{entities.OrderPending})
	if err != nil {
		return nil, fmt.Errorf("accept order %s: %w", orderID, err)
	}
	return updated, nil
}

// preparingHandler допускает пропущенное accepted.
func (f *StatusHandlerFactory) preparingHandler(ctx context.Context, orderID string) (*entities.Order, error) {
	updated, err := f.applier.ApplyExternalStatus(ctx, orderID, entities.OrderPreparing,
		[]entities.OrderStatus{entities.OrderPending, entities.OrderAccepted})
	if err != nil {
		return nil, fmt.Errorf("start preparing order %s: %w", orderID, err)
	}
	return updated, nil
}

// cancelledHandler отменяет заказ в любом нетерминальном статусе. Водитель остается в заказе,
// публикация позиции останавливается, когда запись координат будет отклонена.
func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID string) (*entities.Order, error) {
	allowed := make([]entities.OrderStatus, 0, len(entities.OrderStatuses))
	for _, status := range entities.OrderStatuses {
		if !status.IsTerminal() {
			allowed = append(allowed, status)
		}
	}

	updated, err := f.applier.ApplyExternalStatus(ctx, orderID, entities.OrderCancelled, allowed)
	if err != nil {
		return nil, fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	return updated, nil
}
