package entities

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending             OrderStatus = "pending"
	OrderAccepted            OrderStatus = "accepted"
	OrderPreparing           OrderStatus = "preparing"
	OrderArrivedAtRestaurant OrderStatus = "arrived_at_restaurant"
	OrderPickedUp            OrderStatus = "picked_up"
	OrderArrivedAtCustomer   OrderStatus = "arrived_at_customer"
	OrderDelivered           OrderStatus = "delivered"
	OrderCancelled           OrderStatus = "cancelled"
)

// OrderStatuses перечисляет все статусы в порядке жизненного цикла.
var OrderStatuses = []OrderStatus{
	OrderPending,
	OrderAccepted,
	OrderPreparing,
	OrderArrivedAtRestaurant,
	OrderPickedUp,
	OrderArrivedAtCustomer,
	OrderDelivered,
	OrderCancelled,
}

// courierTransitions - единственные переходы, которые может выполнить курьер.
var courierTransitions = map[OrderStatus]OrderStatus{
	OrderPreparing:           OrderArrivedAtRestaurant,
	OrderArrivedAtRestaurant: OrderPickedUp,
	OrderPickedUp:            OrderArrivedAtCustomer,
	OrderArrivedAtCustomer:   OrderDelivered,
}

// ParseOrderStatus отклоняет всё, что не входит в закрытый набор статусов.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !slices.Contains(OrderStatuses, status) {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// ValidateOrderID проверяет, что id заказа - uuid.
func ValidateOrderID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidOrderID, id)
	}
	return nil
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanAdvanceTo сообщает, разрешен ли курьерский переход s -> next.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	expected, ok := courierTransitions[s]
	return ok && expected == next
}

// IsDispatchable - статусы, которые показываются в ленте курьера.
func (s OrderStatus) IsDispatchable() bool {
	return s == OrderPreparing || s == OrderPickedUp
}

// IsBeforePickup - статусы, в которых заказ еще можно назначить вручную.
func (s OrderStatus) IsBeforePickup() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderPreparing, OrderArrivedAtRestaurant:
		return true
	default:
		return false
	}
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type DriverLocation struct {
	Coordinates
	RecordedAt time.Time
}

// ChatPreview - проекция последнего сообщения чата по заказу, только для бейджей.
type ChatPreview struct {
	Text     string
	SenderID string
	SentAt   time.Time
	Read     bool
}

type Order struct {
	ID                 string
	Status             OrderStatus
	City               string
	CustomerID         string
	RestaurantLocation *Coordinates
	CustomerLocation   *Coordinates
	DriverID           *int64
	DriverName         string
	DriverPhone        string
	RejectedBy         []int64
	DriverLocation     *DriverLocation
	DeliveryPhotoURL   *string
	LastMessage        *ChatPreview
	Total              decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (o *Order) IsRejectedBy(courierID int64) bool {
	return slices.Contains(o.RejectedBy, courierID)
}

func (o *Order) IsAssignedTo(courierID int64) bool {
	return o.DriverID != nil && *o.DriverID == courierID
}

func (o *Order) IsAssigned() bool {
	return o.DriverID != nil
}

// OrderModify - событие об изменении статуса от внешних систем (ресторан, отмена).
type OrderModify struct {
	ID     *string
	Status *OrderStatus
}

// Claim - захват заказа курьером с денормализованными полями курьера.
type Claim struct {
	OrderID      string
	CourierID    int64
	CourierName  string
	CourierPhone string
}

// Assignment - ручное назначение оператором.
type Assignment struct {
	OrderID      string
	CourierID    int64
	CourierName  string
	CourierPhone string
}

// StatusUpdate применяется только если заказ все еще в статусе From.
// DriverID заполняется при неявном захвате на picked_up.
type StatusUpdate struct {
	OrderID     string
	From        OrderStatus
	To          OrderStatus
	DriverID    *int64
	DriverName  string
	DriverPhone string
	PhotoURL    *string
}

type ProofPhoto struct {
	Content     []byte
	ContentType string
}

type TransitionCommand struct {
	OrderID   string
	CourierID int64
	To        OrderStatus
	Photo     *ProofPhoto
}

type AssignCommand struct {
	OrderID         string
	CourierID       int64
	ConfirmReassign bool
	Operator        string
}

// DeliveryEvent публикуется после каждого изменения заказа этим сервисом.
type DeliveryEvent struct {
	OrderID    string
	Status     OrderStatus
	CourierID  *int64
	Reason     string
	OccurredAt time.Time
}

type Route struct {
	Polyline        string
	DurationSeconds int64
	DistanceMeters  int64
}
