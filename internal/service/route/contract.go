//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
}

type Positions interface {
	LatestPosition(courierID int64) (entities.DriverLocation, bool)
}

type Directions interface {
	Route(ctx context.Context, from, to entities.Coordinates) (*entities.Route, error)
}
