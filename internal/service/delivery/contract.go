//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.Order, error)
	UpdateStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Order, error)
}

type LoyaltyLedger interface {
	// Award возвращает false, если баллы за этот заказ уже начислены.
	Award(ctx context.Context, award entities.LoyaltyAward) (bool, error)
}

type CourierService interface {
	GetCourier(ctx context.Context, id int64) (*entities.Courier, error)
}

type PhotoStorage interface {
	UploadProof(ctx context.Context, orderID string, photo entities.ProofPhoto) (string, error)
}

type Tracker interface {
	Start(courierID int64, orderID string)
	Stop(orderID string)
}

type EventPublisher interface {
	PublishDeliveryEvent(ctx context.Context, event entities.DeliveryEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
