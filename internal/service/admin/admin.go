package admin

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
	"github.com/AlekSi/pointer"
)

type Admin struct {
	log        serviceLogger
	repository Repository
	couriers   CourierService
	events     EventPublisher
	txManager  TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	couriers CourierService,
	events EventPublisher,
	txManager TxManager,
) *Admin {
	return &Admin{
		log:        log,
		repository: repository,
		couriers:   couriers,
		events:     events,
		txManager:  txManager,
	}
}

// AssignCourier назначает курьера вручную. Город и rejectedBy не проверяются.
// Окно назначения - до забора заказа. Смена курьера требует подтверждения.
func (a *Admin) AssignCourier(ctx context.Context, cmd entities.AssignCommand) (*entities.Order, error) {
	if err := entities.ValidateOrderID(cmd.OrderID); err != nil {
		return nil, err
	}
	if cmd.CourierID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if cmd.Operator == "" {
		return nil, ErrMissingOperator
	}

	courier, err := a.couriers.GetCourier(ctx, cmd.CourierID)
	if err != nil {
		return nil, fmt.Errorf("load courier: %w", err)
	}

	var (
		assigned  *entities.Order
		previous  *int64
		unchanged bool
	)
	err = a.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := a.repository.GetByIDForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}

		if !order.Status.IsBeforePickup() {
			return fmt.Errorf("%w: cannot assign order in status %s", entities.ErrInvalidTransition, order.Status)
		}
		if order.IsAssignedTo(cmd.CourierID) {
			assigned = order
			unchanged = true
			return nil
		}
		if order.IsAssigned() && !cmd.ConfirmReassign {
			return entities.ErrReassignNotConfirmed
		}
		previous = order.DriverID

		assigned, err = a.repository.AdminAssign(ctx, entities.Assignment{
			OrderID:      cmd.OrderID,
			CourierID:    courier.ID,
			CourierName:  courier.Name,
			CourierPhone: courier.Phone,
		})
		if err != nil {
			return fmt.Errorf("assign courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if unchanged {
		return assigned, nil
	}

	fields := []logger.Field{
		logger.NewField("order_id", cmd.OrderID),
		logger.NewField("courier_id", cmd.CourierID),
		logger.NewField("operator", cmd.Operator),
	}
	if previous != nil {
		fields = append(fields, logger.NewField("previous_courier_id", *previous))
	}
	a.log.Info("courier assigned manually", fields...)

	if err := a.events.PublishDeliveryEvent(ctx, entities.DeliveryEvent{
		OrderID:    assigned.ID,
		Status:     assigned.Status,
		CourierID:  pointer.To(cmd.CourierID),
		Reason:     "admin_assigned",
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		a.log.Warn("publish delivery event", append(fields, logger.NewField("error", err))...)
	}
	return assigned, nil
}
