package orderwatch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
	"dispatch/pkg/retrier"
	"golang.org/x/sync/errgroup"
)

// Channel совпадает с каналом триггера notify_orders_changed.
const Channel = "orders_changed"

type subscription struct {
	ch chan []entities.Order
	// seq последнего отданного снимка
	seq uint64
}

// Watcher превращает уведомления PostgreSQL в поток снимков заказов по городу.
// Каждый подписчик получает последний снимок: промежуточные перезаписываются.
type Watcher struct {
	log      watcherLogger
	repo     Repository
	listener Listener
	retrier  retrier.Retrier

	mu     sync.Mutex
	subs   map[string]map[uint64]*subscription
	nextID uint64
	// seq нумерует чтения снимков в порядке их начала
	seq uint64

	pendingMu sync.Mutex
	pending   map[string]struct{}
	wake      chan struct{}
}

func New(log watcherLogger, repo Repository, listener Listener, retrier retrier.Retrier) *Watcher {
	return &Watcher{
		log:      log.With(logger.NewField("component", "orderwatch")),
		repo:     repo,
		listener: listener,
		retrier:  retrier,
		subs:     make(map[string]map[uint64]*subscription),
		pending:  make(map[string]struct{}),
		wake:     make(chan struct{}, 1),
	}
}

// Subscribe сразу отдает текущий снимок города, дальше - снимок после каждого изменения.
// Канал закрывается после отмены ctx.
func (w *Watcher) Subscribe(ctx context.Context, city string) (<-chan []entities.Order, error) {
	sub := &subscription{ch: make(chan []entities.Order, 1)}

	// регистрация до первого чтения: изменение, пришедшее во время чтения, не потеряется
	w.mu.Lock()
	w.nextID++
	id := w.nextID
	if w.subs[city] == nil {
		w.subs[city] = make(map[uint64]*subscription)
	}
	w.subs[city][id] = sub
	w.mu.Unlock()

	orders, seq, err := w.load(ctx, city)
	if err != nil {
		w.unsubscribe(city, id)
		return nil, fmt.Errorf("initial snapshot for %s: %w", city, err)
	}

	w.mu.Lock()
	deliver(sub, seq, orders)
	w.mu.Unlock()
	Subscribers.Inc()

	go func() {
		<-ctx.Done()
		w.unsubscribe(city, id)
		Subscribers.Dec()
	}()

	return sub.ch, nil
}

func (w *Watcher) unsubscribe(city string, id uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sub, ok := w.subs[city][id]
	if !ok {
		return
	}
	delete(w.subs[city], id)
	if len(w.subs[city]) == 0 {
		delete(w.subs, city)
	}
	close(sub.ch)
}

// Run слушает уведомления до отмены ctx, переподключаясь через retrier.
func (w *Watcher) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		w.refreshLoop(ctx)
		return nil
	})

	g.Go(func() error {
		err := w.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
			err := w.listener.Listen(ctx, Channel, w.refreshAll, w.notify)
			if err != nil && ctx.Err() == nil {
				w.log.With(logger.NewField("error", err)).Warn("order notifications interrupted, reconnecting")
			}
			return err
		})
		if ctx.Err() != nil {
			return nil
		}
		return err
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("order watcher: %w", err)
	}
	return nil
}

// notify помечает город грязным. Пачка уведомлений по одному городу дает одно перечитывание.
func (w *Watcher) notify(city string) {
	NotificationsTotal.Inc()

	w.pendingMu.Lock()
	w.pending[city] = struct{}{}
	w.pendingMu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// refreshAll вызывается после (пере)подключения: изменения за время разрыва могли потеряться.
func (w *Watcher) refreshAll() {
	for _, city := range w.subscribedCities() {
		w.notify(city)
	}
}

// Resync синхронно перечитывает все города с подписчиками и возвращает их число.
func (w *Watcher) Resync(ctx context.Context) int {
	cities := w.subscribedCities()
	for _, city := range cities {
		w.Refresh(ctx, city)
	}
	return len(cities)
}

func (w *Watcher) subscribedCities() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	cities := make([]string, 0, len(w.subs))
	for city := range w.subs {
		cities = append(cities, city)
	}
	return cities
}

func (w *Watcher) refreshLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.wake:
		}

		w.pendingMu.Lock()
		cities := w.pending
		w.pending = make(map[string]struct{})
		w.pendingMu.Unlock()

		for city := range cities {
			w.Refresh(ctx, city)
		}
	}
}

// Refresh перечитывает город и рассылает снимок подписчикам.
// Безопасен для параллельных вызовов: снимок, прочитанный раньше, не перезапишет более новый.
func (w *Watcher) Refresh(ctx context.Context, city string) {
	if !w.hasSubscribers(city) {
		return
	}

	orders, seq, err := w.load(ctx, city)
	if err != nil {
		RefreshErrorsTotal.Inc()
		w.log.With(
			logger.NewField("city", city),
			logger.NewField("error", err),
		).Warn("refresh city snapshot")
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, sub := range w.subs[city] {
		deliver(sub, seq, orders)
	}
}

// load читает снимок города. Номер берется до чтения: чем он больше, тем свежее снимок.
func (w *Watcher) load(ctx context.Context, city string) ([]entities.Order, uint64, error) {
	w.mu.Lock()
	w.seq++
	seq := w.seq
	w.mu.Unlock()

	orders, err := w.repo.ListDispatchable(ctx, city)
	if err != nil {
		return nil, 0, err
	}
	return orders, seq, nil
}

func (w *Watcher) hasSubscribers(city string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs[city]) > 0
}

// deliver вызывается под w.mu.
func deliver(sub *subscription, seq uint64, orders []entities.Order) {
	if seq <= sub.seq {
		return
	}
	sub.seq = seq
	offer(sub.ch, orders)
}

// offer заменяет непрочитанный снимок новым.
func offer(ch chan []entities.Order, orders []entities.Order) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- orders:
	default:
	}
}
