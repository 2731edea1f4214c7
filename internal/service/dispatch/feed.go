package dispatch

import (
	"context"
	"fmt"
	"sync"

	"dispatch/internal/entities"
	"dispatch/internal/geo"
)

// Feed - read model ленты одного курьера поверх подписки на город.
// В хранилище ничего не пишет.
type Feed struct {
	source Source

	mu         sync.Mutex
	session    entities.CourierSession
	snapshot   []entities.Order
	items      []entities.FeedItem
	cancelSub  context.CancelFunc
	generation uint64

	watchers    map[uint64]chan []entities.FeedItem
	nextWatcher uint64
	closed      bool
	// done закрывается в Close и освобождает горутины Watch
	done chan struct{}
}

func NewFeed(source Source, session entities.CourierSession) *Feed {
	session.Online = false
	return &Feed{
		source:   source,
		session:  session,
		items:    []entities.FeedItem{},
		watchers: make(map[uint64]chan []entities.FeedItem),
		done:     make(chan struct{}),
	}
}

// SetOnline(true) подписывается на город сессии, SetOnline(false) отписывается
// и сразу публикует пустую ленту.
func (f *Feed) SetOnline(ctx context.Context, online bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrFeedClosed
	}

	if !online {
		f.unsubscribe()
		f.session.Online = false
		f.recompute()
		return nil
	}

	if f.session.Online && f.cancelSub != nil {
		return nil
	}
	f.session.Online = true
	if err := f.subscribe(ctx); err != nil {
		f.session.Online = false
		f.recompute()
		return err
	}
	return nil
}

// UpdatePosition пересчитывает расстояния по последнему снимку без обращения к хранилищу.
func (f *Feed) UpdatePosition(position *entities.Coordinates) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if position != nil {
		p := *position
		position = &p
	}
	f.session.Position = position
	f.recompute()
}

// UpdateCity переключает подписку, если город изменился.
func (f *Feed) UpdateCity(ctx context.Context, match geo.CityMatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrFeedClosed
	}

	f.session.CityDegraded = match.Degraded
	if f.session.City == match.City {
		return nil
	}

	f.session.City = match.City
	if !f.session.Online {
		return nil
	}

	f.unsubscribe()
	f.recompute()
	return f.subscribe(ctx)
}

// Watch возвращает канал с текущей лентой и всеми последующими.
// Непрочитанное значение заменяется более свежим. Канал закрывается после отмены ctx или Close.
func (f *Feed) Watch(ctx context.Context) <-chan []entities.FeedItem {
	ch := make(chan []entities.FeedItem, 1)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		close(ch)
		return ch
	}
	f.nextWatcher++
	id := f.nextWatcher
	f.watchers[id] = ch
	ch <- f.items
	f.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-f.done:
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.watchers[id]; ok {
			delete(f.watchers, id)
			close(ch)
		}
	}()

	return ch
}

func (f *Feed) Current() []entities.FeedItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items
}

func (f *Feed) Session() entities.CourierSession {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

// Close отписывается и закрывает все каналы Watch.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	close(f.done)
	f.unsubscribe()
	for id, ch := range f.watchers {
		delete(f.watchers, id)
		close(ch)
	}
}

// subscribe вызывается под f.mu. Подписка живет до unsubscribe, а не до конца запроса.
func (f *Feed) subscribe(ctx context.Context) error {
	f.generation++
	generation := f.generation

	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	updates, err := f.source.Subscribe(subCtx, f.session.City)
	if err != nil {
		cancel()
		return fmt.Errorf("subscribe to %s: %w", f.session.City, err)
	}
	f.cancelSub = cancel

	go f.consume(generation, updates)
	return nil
}

func (f *Feed) unsubscribe() {
	f.generation++
	if f.cancelSub != nil {
		f.cancelSub()
		f.cancelSub = nil
	}
	f.snapshot = nil
}

func (f *Feed) consume(generation uint64, updates <-chan []entities.Order) {
	for orders := range updates {
		f.mu.Lock()
		if generation != f.generation {
			f.mu.Unlock()
			continue
		}
		f.snapshot = orders
		f.recompute()
		f.mu.Unlock()
	}
}

// recompute вызывается под f.mu.
func (f *Feed) recompute() {
	f.items = Compose(f.session, f.snapshot)
	for _, ch := range f.watchers {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- f.items:
		default:
		}
	}
}
