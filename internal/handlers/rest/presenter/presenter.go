// Package presenter переводит сущности в модели ответа REST API.
package presenter

import (
	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"github.com/AlekSi/pointer"
)

func Courier(courier *entities.Courier) dto.Courier {
	return dto.Courier{
		ID:            courier.ID,
		Name:          courier.Name,
		Phone:         courier.Phone,
		HomeCity:      courier.HomeCity,
		TransportType: dto.TransportType(courier.TransportType.String()),
	}
}

func Order(order *entities.Order) dto.Order {
	result := dto.Order{
		ID:                 order.ID,
		Status:             dto.OrderStatus(order.Status.String()),
		City:               order.City,
		RestaurantLocation: coordinates(order.RestaurantLocation),
		CustomerLocation:   coordinates(order.CustomerLocation),
		DriverID:           order.DriverID,
		DeliveryPhotoURL:   order.DeliveryPhotoURL,
		Total:              order.Total.StringFixed(2),
		UpdatedAt:          order.UpdatedAt,
	}
	if order.DriverName != "" {
		result.DriverName = pointer.To(order.DriverName)
	}
	if order.DriverPhone != "" {
		result.DriverPhone = pointer.To(order.DriverPhone)
	}
	if order.DriverLocation != nil {
		result.DriverLocation = &dto.DriverLocation{
			Latitude:   order.DriverLocation.Latitude,
			Longitude:  order.DriverLocation.Longitude,
			RecordedAt: order.DriverLocation.RecordedAt,
		}
	}
	return result
}

// Feed отдает пустой массив, а не null, если в ленте нет заказов.
func Feed(items []entities.FeedItem) dto.Feed {
	feed := dto.Feed{Items: make([]dto.FeedItem, 0, len(items))}
	for i := range items {
		feed.Items = append(feed.Items, dto.FeedItem{
			Order:        Order(&items[i].Order),
			DistanceKm:   items[i].DistanceKm,
			AssignedToMe: items[i].AssignedToMe,
			HasUnread:    items[i].HasUnread,
		})
	}
	return feed
}

func Session(session entities.CourierSession) dto.Session {
	return dto.Session{
		CourierID:    session.CourierID,
		City:         session.City,
		CityDegraded: session.CityDegraded,
		Online:       session.Online,
		Position:     coordinates(session.Position),
	}
}

func Route(route *entities.Route) dto.Route {
	return dto.Route{
		Polyline:        route.Polyline,
		DurationSeconds: route.DurationSeconds,
		DistanceMeters:  route.DistanceMeters,
	}
}

func coordinates(c *entities.Coordinates) *dto.Coordinates {
	if c == nil {
		return nil
	}
	return &dto.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}
