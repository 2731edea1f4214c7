//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	// UpdateDriverLocation возвращает false, если заказ уже не picked_up или не у этого курьера.
	UpdateDriverLocation(ctx context.Context, orderID string, courierID int64, location entities.DriverLocation) (bool, error)
}

// Positions - последние координаты устройства курьера.
type Positions interface {
	LatestPosition(courierID int64) (entities.DriverLocation, bool)
}

type publisherLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
