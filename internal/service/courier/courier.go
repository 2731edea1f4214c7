package courier

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Courier struct {
	repository Repository
	cities     CityCatalog
}

func New(repository Repository, cities CityCatalog) *Courier {
	return &Courier{
		repository: repository,
		cities:     cities,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.Name == nil ||
		courierModify.Phone == nil ||
		courierModify.HomeCity == nil {
		return 0, ErrMissingRequiredFields
	}
	if courierModify.TransportType == nil {
		transport := entities.DefaultTransportType
		courierModify.TransportType = &transport
	}

	if err := s.validate(&courierModify); err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil || *courierModify.ID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if courierModify.Name == nil &&
		courierModify.Phone == nil &&
		courierModify.HomeCity == nil &&
		courierModify.TransportType == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := s.validate(&courierModify); err != nil {
		return nil, err
	}

	courier, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}
	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

// validate проверяет переданные поля и приводит город к написанию из справочника.
func (s *Courier) validate(courierModify *entities.CourierModify) error {
	if courierModify.Name != nil && !isValidName(*courierModify.Name) {
		return ErrInvalidName
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return ErrInvalidPhone
	}
	if courierModify.TransportType != nil && !isValidTransport(courierModify.TransportType.String()) {
		return ErrInvalidTransport
	}
	if courierModify.HomeCity != nil {
		city, ok := s.cities.Canonical(*courierModify.HomeCity)
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidHomeCity, *courierModify.HomeCity)
		}
		courierModify.HomeCity = &city
	}
	return nil
}
