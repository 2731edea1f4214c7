package geo

import (
	"math"

	"dispatch/internal/entities"
)

// EarthRadiusKm - средний радиус Земли для сферической модели.
const EarthRadiusKm = 6371.0

// DistanceKm возвращает расстояние по большому кругу или nil, если одной из точек нет.
// nil означает "неизвестно" и при сортировке идет последним, а не как ноль.
func DistanceKm(a, b *entities.Coordinates) *float64 {
	if a == nil || b == nil {
		return nil
	}
	d := haversineKm(*a, *b)
	return &d
}

func DistanceMeters(a, b entities.Coordinates) float64 {
	return haversineKm(a, b) * 1000
}

// CompareDistance упорядочивает по возрастанию, неизвестные расстояния в конце.
func CompareDistance(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

func haversineKm(a, b entities.Coordinates) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
