package feed_resync

import (
	"context"
	"time"
)

// FeedResync периодически перечитывает снимки всех городов с подписчиками
// на случай пропущенных уведомлений.
type FeedResync struct {
	watcher  Watcher
	interval time.Duration
}

func NewFeedResync(watcher Watcher, interval time.Duration) *FeedResync {
	return &FeedResync{
		watcher:  watcher,
		interval: interval,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (f *FeedResync) TTL() time.Duration {
	return f.interval
}

// Do выполняет логику задачи.
func (f *FeedResync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, f.interval)
	defer cancel()

	f.watcher.Resync(ctxWithTimeout)
	return nil
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (f *FeedResync) Info() string {
	return "feed resync"
}
