package dispatch

import (
	"slices"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/geo"
)

// Compose строит ленту курьера из снимка заказов. Входной срез не изменяется.
//
// В ленту попадают заказы в статусах preparing и picked_up из города сессии,
// которые курьер не отклонял и которые свободны или уже его.
// Сначала идут свои заказы в порядке снимка, затем остальные по расстоянию до ресторана,
// заказы без координат в конце.
func Compose(session entities.CourierSession, orders []entities.Order) []entities.FeedItem {
	items := make([]entities.FeedItem, 0, len(orders))
	if !session.Online {
		return items
	}

	for i := range orders {
		order := &orders[i]
		if !isVisible(session, order) {
			continue
		}
		items = append(items, entities.FeedItem{
			Order:        *order,
			DistanceKm:   geo.DistanceKm(session.Position, order.RestaurantLocation),
			AssignedToMe: order.IsAssignedTo(session.CourierID),
			HasUnread:    hasUnread(session.CourierID, order.LastMessage),
		})
	}

	slices.SortStableFunc(items, func(a, b entities.FeedItem) int {
		switch {
		case a.AssignedToMe && b.AssignedToMe:
			return 0
		case a.AssignedToMe:
			return -1
		case b.AssignedToMe:
			return 1
		default:
			return geo.CompareDistance(a.DistanceKm, b.DistanceKm)
		}
	})

	return items
}

func isVisible(session entities.CourierSession, order *entities.Order) bool {
	if !order.Status.IsDispatchable() {
		return false
	}
	if order.City != session.City {
		return false
	}
	if order.IsRejectedBy(session.CourierID) {
		return false
	}
	return !order.IsAssigned() || order.IsAssignedTo(session.CourierID)
}

// hasUnread - бейдж чата, на фильтр и порядок не влияет.
func hasUnread(courierID int64, message *entities.ChatPreview) bool {
	if message == nil || message.Read {
		return false
	}
	return message.SenderID != strconv.FormatInt(courierID, 10)
}
