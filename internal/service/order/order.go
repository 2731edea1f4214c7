package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

// Service применяет статусы ресторана и отмены, пришедшие из Kafka.
type Service struct {
	statusFactory HandlerFactory
	events        EventPublisher
}

func New(statusFactory HandlerFactory, events EventPublisher) *Service {
	return &Service{
		statusFactory: statusFactory,
		events:        events,
	}
}

// ProcessOrderStatusChange возвращает (nil, nil) для статусов, которые сервис не обрабатывает.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, ErrMissingRequiredFields
	}
	if err := entities.ValidateOrderID(*orderModify.ID); err != nil {
		return nil, err
	}

	executeFn, err := s.statusFactory.GetHandler(*orderModify.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return nil, nil
		}
		return nil, err
	}

	order, err := executeFn(ctx, *orderModify.ID)
	if err != nil {
		return nil, err
	}

	// событие вторично: статус уже записан
	if err := s.events.PublishDeliveryEvent(ctx, entities.DeliveryEvent{
		OrderID:    order.ID,
		Status:     order.Status,
		CourierID:  order.DriverID,
		Reason:     "external_status",
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return order, fmt.Errorf("%w: %w", ErrEventNotPublished, err)
	}
	return order, nil
}
