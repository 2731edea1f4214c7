package tracking

import (
	"context"
	"sync"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/geo"
	"dispatch/pkg/logger"
)

type Config struct {
	SampleInterval    time.Duration
	MaxInterval       time.Duration
	MinDistanceMeters float64
	PublishTimeout    time.Duration
}

type job struct {
	orderID string
	cancel  context.CancelFunc
}

// Publisher пишет позицию курьера в заказ, пока заказ в статусе picked_up.
// На курьера не больше одной активной задачи.
type Publisher struct {
	ctx       context.Context
	cancel    context.CancelFunc
	log       publisherLogger
	repo      Repository
	positions Positions
	cfg       Config

	mu     sync.Mutex
	jobs   map[int64]*job
	wg     sync.WaitGroup
	closed bool
}

func New(ctx context.Context, log publisherLogger, repo Repository, positions Positions, cfg Config) *Publisher {
	ctx, cancel := context.WithCancel(ctx)
	return &Publisher{
		ctx:       ctx,
		cancel:    cancel,
		log:       log,
		repo:      repo,
		positions: positions,
		cfg:       cfg,
		jobs:      make(map[int64]*job),
	}
}

// Start запускает публикацию для заказа, заменяя прежнюю задачу курьера.
func (p *Publisher) Start(courierID int64, orderID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	if current, ok := p.jobs[courierID]; ok {
		if current.orderID == orderID {
			return
		}
		p.stopLocked(courierID, current)
	}

	ctx, cancel := context.WithCancel(p.ctx)
	j := &job{orderID: orderID, cancel: cancel}
	p.jobs[courierID] = j
	ActiveJobs.Inc()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.run(ctx, courierID, j)
	}()

	p.log.Info("location publishing started",
		logger.NewField("courier_id", courierID),
		logger.NewField("order_id", orderID),
	)
}

// Stop останавливает задачу по заказу, если она есть.
func (p *Publisher) Stop(orderID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for courierID, j := range p.jobs {
		if j.orderID == orderID {
			p.stopLocked(courierID, j)
		}
	}
}

func (p *Publisher) StopCourier(courierID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if j, ok := p.jobs[courierID]; ok {
		p.stopLocked(courierID, j)
	}
}

// Close останавливает все задачи и ждет их завершения.
func (p *Publisher) Close() {
	p.mu.Lock()
	p.closed = true
	for courierID, j := range p.jobs {
		p.stopLocked(courierID, j)
	}
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
}

func (p *Publisher) stopLocked(courierID int64, j *job) {
	j.cancel()
	delete(p.jobs, courierID)
	ActiveJobs.Dec()
}

// finish снимает задачу, если ее еще не заменили новой.
func (p *Publisher) finish(courierID int64, j *job) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if current, ok := p.jobs[courierID]; ok && current == j {
		p.stopLocked(courierID, j)
	}
}

func (p *Publisher) run(ctx context.Context, courierID int64, j *job) {
	log := p.log.With(
		logger.NewField("courier_id", courierID),
		logger.NewField("order_id", j.orderID),
	)

	ticker := time.NewTicker(p.cfg.SampleInterval)
	defer ticker.Stop()

	var last *entities.DriverLocation
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		// без разрешения на геолокацию позиции нет: задача просто ждет
		sample, ok := p.positions.LatestPosition(courierID)
		if !ok || !p.due(last, sample) {
			continue
		}

		writeCtx, cancel := context.WithTimeout(ctx, p.cfg.PublishTimeout)
		accepted, err := p.repo.UpdateDriverLocation(writeCtx, j.orderID, courierID, sample)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			PublishErrorsTotal.Inc()
			log.Warn("publish driver location", logger.NewField("error", err))
			continue
		}
		if !accepted {
			log.Info("order is no longer picked up, location publishing stopped")
			p.finish(courierID, j)
			return
		}

		PublishedTotal.Inc()
		last = &sample
	}
}

// due: новее последней публикации и прошло MaxInterval или сдвиг не меньше MinDistanceMeters.
func (p *Publisher) due(last *entities.DriverLocation, sample entities.DriverLocation) bool {
	if last == nil {
		return true
	}
	if !sample.RecordedAt.After(last.RecordedAt) {
		return false
	}
	if sample.RecordedAt.Sub(last.RecordedAt) >= p.cfg.MaxInterval {
		return true
	}
	return geo.DistanceMeters(last.Coordinates, sample.Coordinates) >= p.cfg.MinDistanceMeters
}
