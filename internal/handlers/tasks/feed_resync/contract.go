//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=feed_resync_test
package feed_resync

import "context"

type Watcher interface {
	Resync(ctx context.Context) int
}
