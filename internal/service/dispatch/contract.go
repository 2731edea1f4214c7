//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"dispatch/internal/entities"
)

// Source - push-подписка на снимки заказов города. Канал закрывается после отмены ctx.
type Source interface {
	Subscribe(ctx context.Context, city string) (<-chan []entities.Order, error)
}
