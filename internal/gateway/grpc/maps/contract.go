//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maps_test
package maps

import (
	"context"

	proto "dispatch/internal/generated/proto/clients"
	"google.golang.org/grpc"
)

type client interface {
	ReverseGeocode(ctx context.Context, in *proto.ReverseGeocodeRequest, opts ...grpc.CallOption) (*proto.ReverseGeocodeResponse, error)
	Route(ctx context.Context, in *proto.RouteRequest, opts ...grpc.CallOption) (*proto.RouteResponse, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
