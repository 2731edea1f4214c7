//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=city_test
package city

import (
	"context"
)

type Repository interface {
	ListActive(ctx context.Context) ([]string, error)
}
