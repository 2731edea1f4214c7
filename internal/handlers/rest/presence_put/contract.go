//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=presence_put_test
package presence_put

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GoOnline(ctx context.Context, courierID int64, position *entities.DriverLocation) (entities.CourierSession, error)
	GoOffline(ctx context.Context, courierID int64) error
}
