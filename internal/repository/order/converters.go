package order

import (
	"fmt"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	status, err := entities.ParseOrderStatus(o.Status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", o.ID, err)
	}

	total, err := decimal.NewFromString(o.Total)
	if err != nil {
		return nil, fmt.Errorf("order %s total %q: %w", o.ID, o.Total, err)
	}

	order := &entities.Order{
		ID:                 o.ID,
		Status:             status,
		City:               o.City,
		CustomerID:         o.CustomerID,
		RestaurantLocation: toCoordinates(o.RestaurantLat, o.RestaurantLng),
		CustomerLocation:   toCoordinates(o.CustomerLat, o.CustomerLng),
		DriverID:           o.DriverID,
		DriverName:         o.DriverName,
		DriverPhone:        o.DriverPhone,
		RejectedBy:         o.RejectedBy,
		DeliveryPhotoURL:   o.DeliveryPhotoURL,
		Total:              total,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
	if order.RejectedBy == nil {
		order.RejectedBy = []int64{}
	}

	if coords := toCoordinates(o.DriverLat, o.DriverLng); coords != nil && o.DriverLocationAt != nil {
		order.DriverLocation = &entities.DriverLocation{
			Coordinates: *coords,
			RecordedAt:  *o.DriverLocationAt,
		}
	}

	if o.LastMessageAt != nil {
		preview := &entities.ChatPreview{
			SentAt: *o.LastMessageAt,
			Read:   o.LastMessageRead,
		}
		if o.LastMessageText != nil {
			preview.Text = *o.LastMessageText
		}
		if o.LastMessageSenderID != nil {
			preview.SenderID = *o.LastMessageSenderID
		}
		order.LastMessage = preview
	}

	return order, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		order, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	return result, nil
}

func toCoordinates(lat, lng *float64) *entities.Coordinates {
	if lat == nil || lng == nil {
		return nil
	}
	return &entities.Coordinates{Latitude: *lat, Longitude: *lng}
}

func statusesToStrings(statuses []entities.OrderStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = s.String()
	}
	return result
}
