//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=feed_stream_test
package feed_stream

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	WatchFeed(ctx context.Context, courierID int64) (<-chan []entities.FeedItem, error)
}
