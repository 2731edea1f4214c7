package order_status_changed

import "time"

// statusChangedEvent - сообщение топика order.status.changed от ресторана и службы отмены.
type statusChangedEvent struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}
