package delivery_events

import (
	"time"

	"dispatch/internal/entities"
)

const eventType = "order.delivery.changed"

type message struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	CourierID  *int64    `json:"courier_id,omitempty"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toMessage(event entities.DeliveryEvent) message {
	return message{
		OrderID:    event.OrderID,
		Status:     event.Status.String(),
		CourierID:  event.CourierID,
		Reason:     event.Reason,
		OccurredAt: event.OccurredAt.UTC(),
	}
}
