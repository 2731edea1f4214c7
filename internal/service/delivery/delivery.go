package delivery

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
	"github.com/AlekSi/pointer"
)

type Delivery struct {
	log        serviceLogger
	repository Repository
	loyalty    LoyaltyLedger
	couriers   CourierService
	storage    PhotoStorage
	tracker    Tracker
	events     EventPublisher
	txManager  TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	loyalty LoyaltyLedger,
	couriers CourierService,
	storage PhotoStorage,
	tracker Tracker,
	events EventPublisher,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		log:        log,
		repository: repository,
		loyalty:    loyalty,
		couriers:   couriers,
		storage:    storage,
		tracker:    tracker,
		events:     events,
		txManager:  txManager,
	}
}

// Advance переводит заказ на следующий статус цепочки доставки.
// Фото загружается до записи статуса: при ошибке загрузки статус не меняется.
func (d *Delivery) Advance(ctx context.Context, cmd entities.TransitionCommand) (*entities.Order, error) {
	if err := entities.ValidateOrderID(cmd.OrderID); err != nil {
		return nil, err
	}
	if cmd.CourierID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if _, err := entities.ParseOrderStatus(cmd.To.String()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStatus, err)
	}

	current, err := d.repository.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err = checkTransition(current, cmd); err != nil {
		return nil, err
	}

	var courier *entities.Courier
	if cmd.To == entities.OrderPickedUp && !current.IsAssigned() {
		courier, err = d.couriers.GetCourier(ctx, cmd.CourierID)
		if err != nil {
			return nil, fmt.Errorf("load courier: %w", err)
		}
	}

	// фото на других переходах не нужно и игнорируется
	var photoURL *string
	if cmd.To == entities.OrderDelivered && cmd.Photo != nil {
		url, err := d.storage.UploadProof(ctx, cmd.OrderID, *cmd.Photo)
		if err != nil {
			UploadFailuresTotal.Inc()
			return nil, fmt.Errorf("%w: %w", entities.ErrUploadFailed, err)
		}
		photoURL = &url
	}

	var (
		from    entities.OrderStatus
		updated *entities.Order
		points  int64
	)
	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := d.repository.GetByIDForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}
		if err = checkTransition(locked, cmd); err != nil {
			return err
		}
		from = locked.Status

		update := entities.StatusUpdate{
			OrderID:  cmd.OrderID,
			From:     locked.Status,
			To:       cmd.To,
			PhotoURL: photoURL,
		}
		if cmd.To == entities.OrderPickedUp && !locked.IsAssigned() {
			if courier == nil {
				// заказ освободился между чтением и блокировкой
				return entities.ErrInvalidTransition
			}
			update.DriverID = pointer.To(courier.ID)
			update.DriverName = courier.Name
			update.DriverPhone = courier.Phone
		}

		updated, err = d.repository.UpdateStatus(ctx, update)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		if cmd.To == entities.OrderDelivered {
			points, err = d.award(ctx, locked)
			if err != nil {
				return fmt.Errorf("award loyalty: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	TransitionsTotal.WithLabelValues(cmd.To.String()).Inc()
	if points > 0 {
		LoyaltyPointsAwarded.Add(float64(points))
	}

	switch {
	case cmd.To == entities.OrderPickedUp:
		d.tracker.Start(cmd.CourierID, cmd.OrderID)
	case from == entities.OrderPickedUp:
		d.tracker.Stop(cmd.OrderID)
	}

	d.publish(ctx, entities.DeliveryEvent{
		OrderID:    updated.ID,
		Status:     updated.Status,
		CourierID:  updated.DriverID,
		Reason:     "courier_transition",
		OccurredAt: time.Now().UTC(),
	})
	return updated, nil
}

// award начисляет floor(total/1000) баллов. Повторное начисление за заказ отсекает журнал.
func (d *Delivery) award(ctx context.Context, order *entities.Order) (int64, error) {
	points := entities.LoyaltyPointsFor(order.Total)
	if points == 0 || order.CustomerID == "" {
		return 0, nil
	}

	applied, err := d.loyalty.Award(ctx, entities.LoyaltyAward{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Points:     points,
	})
	if err != nil {
		return 0, err
	}
	if !applied {
		d.log.Info("loyalty points already awarded", logger.NewField("order_id", order.ID))
		return 0, nil
	}
	return points, nil
}

func (d *Delivery) publish(ctx context.Context, event entities.DeliveryEvent) {
	if err := d.events.PublishDeliveryEvent(ctx, event); err != nil {
		d.log.Warn("publish delivery event",
			logger.NewField("order_id", event.OrderID),
			logger.NewField("status", event.Status.String()),
			logger.NewField("error", err),
		)
	}
}

// checkTransition проверяет ребро цепочки и владельца заказа.
// Без водителя заказ можно двигать только до забора: picked_up назначает водителя.
func checkTransition(order *entities.Order, cmd entities.TransitionCommand) error {
	if !order.Status.CanAdvanceTo(cmd.To) {
		return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, cmd.To)
	}

	if order.IsAssigned() {
		if !order.IsAssignedTo(cmd.CourierID) {
			return entities.ErrNotOrderOwner
		}
		return nil
	}

	if !order.Status.IsBeforePickup() {
		return entities.ErrNotOrderOwner
	}
	if order.IsRejectedBy(cmd.CourierID) {
		return entities.ErrRejectedByCourier
	}
	return nil
}
