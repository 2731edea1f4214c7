//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_test
package admin

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	GetByIDForUpdate(ctx context.Context, id string) (*entities.Order, error)
	AdminAssign(ctx context.Context, assignment entities.Assignment) (*entities.Order, error)
}

type CourierService interface {
	GetCourier(ctx context.Context, id int64) (*entities.Courier, error)
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
