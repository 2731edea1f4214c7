//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=feed_get_test
package feed_get

import (
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
	CurrentFeed(courierID int64) []entities.FeedItem
}
