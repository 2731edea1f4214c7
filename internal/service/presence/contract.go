//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=presence_test
package presence

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/geo"
	"dispatch/pkg/logger"
)

// PositionStore хранит последнюю позицию курьера. Record отклоняет сэмпл не новее сохраненного.
type PositionStore interface {
	Record(courierID int64, sample entities.DriverLocation) bool
	LatestPosition(courierID int64) (entities.DriverLocation, bool)
}

type OrderRepository interface {
	GetPickedUpByDriver(ctx context.Context, courierID int64) (*entities.Order, error)
}

type CourierService interface {
	GetCourier(ctx context.Context, id int64) (*entities.Courier, error)
}

type CityCatalog interface {
	Reconcile(rawLabel string) geo.CityMatch
}

// Geocoder возвращает произвольную метку места, например "Gombe, Kinshasa, RDC".
type Geocoder interface {
	ReverseGeocode(ctx context.Context, point entities.Coordinates) (string, error)
}

type Tracker interface {
	Start(courierID int64, orderID string)
	StopCourier(courierID int64)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
