package route

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

// Service строит подсказку маршрута. Маршрут не влияет на ленту и переходы.
type Service struct {
	repository Repository
	positions  Positions
	directions Directions
}

func New(repository Repository, positions Positions, directions Directions) *Service {
	return &Service{
		repository: repository,
		positions:  positions,
		directions: directions,
	}
}

// RouteForCourier ведет от текущей позиции курьера к ресторану до забора и к клиенту после.
func (s *Service) RouteForCourier(ctx context.Context, orderID string, courierID int64) (*entities.Route, error) {
	if err := entities.ValidateOrderID(orderID); err != nil {
		return nil, err
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.IsAssigned() && !order.IsAssignedTo(courierID) {
		return nil, entities.ErrNotOrderOwner
	}

	destination := order.RestaurantLocation
	if !order.Status.IsBeforePickup() {
		destination = order.CustomerLocation
	}
	if destination == nil {
		return nil, ErrNoDestination
	}

	origin, ok := s.positions.LatestPosition(courierID)
	if !ok {
		return nil, ErrNoOrigin
	}

	route, err := s.directions.Route(ctx, origin.Coordinates, *destination)
	if err != nil {
		return nil, fmt.Errorf("directions: %w", err)
	}
	return route, nil
}
