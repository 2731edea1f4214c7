//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=claim_test
package claim

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Claim(ctx context.Context, claim entities.Claim) (*entities.Order, error)
	AddRejection(ctx context.Context, orderID string, courierID int64) error
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

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
