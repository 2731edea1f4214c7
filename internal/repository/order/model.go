package order

import "time"

type OrderDB struct {
	ID                  string
	Status              string
	City                string
	CustomerID          string
	RestaurantLat       *float64
	RestaurantLng       *float64
	CustomerLat         *float64
	CustomerLng         *float64
	DriverID            *int64
	DriverName          string
	DriverPhone         string
	RejectedBy          []int64
	DriverLat           *float64
	DriverLng           *float64
	DriverLocationAt    *time.Time
	DeliveryPhotoURL    *string
	LastMessageText     *string
	LastMessageSenderID *string
	LastMessageAt       *time.Time
	LastMessageRead     bool
	Total               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// orderColumns соответствует порядку полей в scanOrder.
const orderColumns = `id::text, status, city, customer_id,
	restaurant_lat, restaurant_lng, customer_lat, customer_lng,
	driver_id, driver_name, driver_phone, rejected_by,
	driver_lat, driver_lng, driver_location_at, delivery_photo_url,
	last_message_text, last_message_sender_id, last_message_at, last_message_read,
	total::text, created_at, updated_at`
