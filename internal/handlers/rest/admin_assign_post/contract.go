//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_assign_post_test
package admin_assign_post

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
	AssignCourier(ctx context.Context, cmd entities.AssignCommand) (*entities.Order, error)
}
