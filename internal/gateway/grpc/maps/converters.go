package maps

import (
	"fmt"
	"strings"

	"dispatch/internal/entities"
	proto "dispatch/internal/generated/proto/clients"
)

func toPoint(point entities.Coordinates) *proto.Point {
	return &proto.Point{
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
	}
}

// toLabel берет label, а если он пуст, собирает метку из locality и country.
func toLabel(resp *proto.ReverseGeocodeResponse) (string, error) {
	if resp == nil {
		return "", ErrInvalidRecord
	}

	label := strings.TrimSpace(resp.GetLabel())
	if label != "" {
		return label, nil
	}

	parts := make([]string, 0, 2)
	for _, v := range []string{resp.GetLocality(), resp.GetCountry()} {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "", ErrEmptyLabel
	}

	return strings.Join(parts, ", "), nil
}

func toRoute(resp *proto.RouteResponse) (*entities.Route, error) {
	if resp == nil {
		return nil, ErrInvalidRecord
	}
	if resp.GetDurationSeconds() < 0 {
		return nil, fmt.Errorf("%w: duration_seconds %d", ErrInvalidRoute, resp.GetDurationSeconds())
	}
	if resp.GetDistanceMeters() < 0 {
		return nil, fmt.Errorf("%w: distance_meters %d", ErrInvalidRoute, resp.GetDistanceMeters())
	}

	return &entities.Route{
		Polyline:        resp.GetPolyline(),
		DurationSeconds: resp.GetDurationSeconds(),
		DistanceMeters:  resp.GetDistanceMeters(),
	}, nil
}
