package maps

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	proto "dispatch/internal/generated/proto/clients"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "maps-service"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Client - геокодер и маршрутизатор поверх одного соединения.
type Client struct {
	proto.GeocoderClient
	proto.DirectionsClient
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{
		GeocoderClient:   proto.NewGeocoderClient(cc),
		DirectionsClient: proto.NewDirectionsClient(cc),
	}
}

// Gateway ходит в картографический сервис: обратное геокодирование и маршруты.
type Gateway struct {
	client  client
	retrier retrier
}

func New(client client) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) ReverseGeocode(ctx context.Context, point entities.Coordinates) (string, error) {
	req := proto.ReverseGeocodeRequest{Point: toPoint(point)}

	var resp *proto.ReverseGeocodeResponse

	err := g.executeWithMetrics(ctx, "ReverseGeocode", func(ctx context.Context) error {
		var err error
		resp, err = g.client.ReverseGeocode(ctx, &req)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("gateway maps, reverse geocode (%.5f, %.5f): %w", point.Latitude, point.Longitude, err)
	}

	return toLabel(resp)
}

func (g *Gateway) Route(ctx context.Context, from, to entities.Coordinates) (*entities.Route, error) {
	req := proto.RouteRequest{
		Origin:      toPoint(from),
		Destination: toPoint(to),
	}

	var resp *proto.RouteResponse

	err := g.executeWithMetrics(ctx, "Route", func(ctx context.Context) error {
		var err error
		resp, err = g.client.Route(ctx, &req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway maps, route: %w", err)
	}

	return toRoute(resp)
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
