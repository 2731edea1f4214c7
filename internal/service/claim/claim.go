package claim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
	"github.com/AlekSi/pointer"
)

type Service struct {
	log        serviceLogger
	repository Repository
	couriers   CourierService
	events     EventPublisher
	txManager  TxManager
	retrier    Retrier
}

func New(
	log serviceLogger,
	repository Repository,
	couriers CourierService,
	events EventPublisher,
	txManager TxManager,
	retrier Retrier,
) *Service {
	return &Service{
		log:        log,
		repository: repository,
		couriers:   couriers,
		events:     events,
		txManager:  txManager,
		retrier:    retrier,
	}
}

// ClaimOrder закрепляет заказ за курьером. Из нескольких одновременных захватов
// побеждает ровно один, повторный захват тем же курьером - успех без изменений.
// Статус заказа не меняется.
func (s *Service) ClaimOrder(ctx context.Context, orderID string, courierID int64) (*entities.Order, error) {
	if err := entities.ValidateOrderID(orderID); err != nil {
		return nil, err
	}
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.couriers.GetCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("load courier: %w", err)
	}

	claim := entities.Claim{
		OrderID:      orderID,
		CourierID:    courier.ID,
		CourierName:  courier.Name,
		CourierPhone: courier.Phone,
	}

	var claimed *entities.Order
	err = s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			order, err := s.repository.Claim(ctx, claim)
			if err == nil {
				claimed = order
				return nil
			}
			if !errors.Is(err, entities.ErrAlreadyClaimed) {
				return err
			}
			return s.explainRefusal(ctx, orderID, courierID)
		})
	})
	if err != nil {
		ClaimsTotal.WithLabelValues(outcome(err)).Inc()
		return nil, fmt.Errorf("claim order %s: %w", orderID, err)
	}
	ClaimsTotal.WithLabelValues("claimed").Inc()

	s.publish(ctx, entities.DeliveryEvent{
		OrderID:    claimed.ID,
		Status:     claimed.Status,
		CourierID:  pointer.To(courierID),
		Reason:     "claimed",
		OccurredAt: time.Now().UTC(),
	})
	return claimed, nil
}

// RejectOrder добавляет курьера в rejectedBy. Заказ больше не попадет в его ленту.
func (s *Service) RejectOrder(ctx context.Context, orderID string, courierID int64) error {
	if err := entities.ValidateOrderID(orderID); err != nil {
		return err
	}
	if courierID <= 0 {
		return ErrInvalidCourierID
	}

	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.repository.AddRejection(ctx, orderID, courierID)
	})
	if err != nil {
		return fmt.Errorf("reject order %s: %w", orderID, err)
	}
	RejectionsTotal.Inc()
	return nil
}

// explainRefusal уточняет, почему условная запись не прошла. Вызывается в той же транзакции.
func (s *Service) explainRefusal(ctx context.Context, orderID string, courierID int64) error {
	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	switch {
	case order.Status.IsTerminal():
		return entities.ErrInvalidTransition
	case order.IsRejectedBy(courierID):
		return entities.ErrRejectedByCourier
	default:
		return entities.ErrAlreadyClaimed
	}
}

func (s *Service) publish(ctx context.Context, event entities.DeliveryEvent) {
	if err := s.events.PublishDeliveryEvent(ctx, event); err != nil {
		s.log.Warn("publish delivery event",
			logger.NewField("order_id", event.OrderID),
			logger.NewField("reason", event.Reason),
			logger.NewField("error", err),
		)
	}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, entities.ErrAlreadyClaimed):
		return "already_claimed"
	case errors.Is(err, entities.ErrRejectedByCourier):
		return "rejected"
	case errors.Is(err, entities.ErrInvalidTransition):
		return "terminal"
	case errors.Is(err, entities.ErrOrderNotFound):
		return "not_found"
	case errors.Is(err, entities.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "error"
	}
}
