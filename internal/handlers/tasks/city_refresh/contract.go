//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=city_refresh_test
package city_refresh

import "context"

type Catalog interface {
	Refresh(ctx context.Context) (int, error)
}
