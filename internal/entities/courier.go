package entities

import (
	"time"
)

type Courier struct {
	ID            int64
	Name          string
	Phone         string
	HomeCity      string
	TransportType CourierTransportType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CourierTransportType string

const (
	OnFoot  CourierTransportType = "on_foot"
	Scooter CourierTransportType = "scooter"
	Car     CourierTransportType = "car"
)

const DefaultTransportType = OnFoot

func (t CourierTransportType) String() string {
	return string(t)
}

type CourierModify struct {
	ID            *int64
	Name          *string
	Phone         *string
	HomeCity      *string
	TransportType *CourierTransportType
}

// CourierSession - явное состояние онлайн-сессии курьера вместо глобальных переменных.
type CourierSession struct {
	CourierID    int64
	City         string
	CityDegraded bool
	Position     *Coordinates
	Online       bool
}

type FeedItem struct {
	Order        Order
	DistanceKm   *float64
	AssignedToMe bool
	HasUnread    bool
}
