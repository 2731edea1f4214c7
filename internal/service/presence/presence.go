package presence

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/geo"
	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
	"golang.org/x/sync/singleflight"
)

type Config struct {
	GeocodeTimeout time.Duration
	// после такого сдвига город определяется заново
	CityRecheckMeters float64
}

type courierState struct {
	feed       *dispatch.Feed
	geocodedAt *entities.Coordinates
	online     bool
}

// Service хранит сессии курьеров: ленту и город. Последние позиции лежат в PositionStore.
type Service struct {
	log       serviceLogger
	source    dispatch.Source
	positions PositionStore
	orders    OrderRepository
	couriers  CourierService
	catalog   CityCatalog
	geocoder  Geocoder
	tracker   Tracker
	cfg       Config

	geocodes singleflight.Group

	mu     sync.Mutex
	states map[int64]*courierState
}

func New(
	log serviceLogger,
	source dispatch.Source,
	positions PositionStore,
	orders OrderRepository,
	couriers CourierService,
	catalog CityCatalog,
	geocoder Geocoder,
	tracker Tracker,
	cfg Config,
) *Service {
	return &Service{
		log:       log,
		source:    source,
		positions: positions,
		orders:    orders,
		couriers:  couriers,
		catalog:   catalog,
		geocoder:  geocoder,
		tracker:   tracker,
		cfg:       cfg,
		states:    make(map[int64]*courierState),
	}
}

// GoOnline открывает ленту курьера и возобновляет трекинг забранного заказа.
func (s *Service) GoOnline(ctx context.Context, courierID int64, position *entities.DriverLocation) (entities.CourierSession, error) {
	if courierID <= 0 {
		return entities.CourierSession{}, ErrInvalidCourierID
	}
	if position != nil && !validCoordinates(position.Coordinates) {
		return entities.CourierSession{}, ErrInvalidPosition
	}

	courier, err := s.couriers.GetCourier(ctx, courierID)
	if err != nil {
		return entities.CourierSession{}, fmt.Errorf("load courier: %w", err)
	}

	// устаревшая позиция при выходе онлайн не ошибка: берем последнюю известную
	if position != nil {
		s.positions.Record(courierID, *position)
	}
	var point *entities.Coordinates
	if latest, ok := s.positions.LatestPosition(courierID); ok {
		point = &latest.Coordinates
	}

	s.mu.Lock()
	state := s.stateLocked(courierID)
	s.mu.Unlock()

	match := s.resolveCity(ctx, courier, point)

	s.mu.Lock()
	state.geocodedAt = point
	if state.feed == nil {
		state.feed = dispatch.NewFeed(s.source, entities.CourierSession{
			CourierID:    courierID,
			City:         match.City,
			CityDegraded: match.Degraded,
		})
	}
	feed := state.feed
	wasOnline := state.online
	state.online = true
	s.mu.Unlock()

	feed.UpdatePosition(point)
	if err = feed.UpdateCity(ctx, match); err != nil {
		return entities.CourierSession{}, fmt.Errorf("switch city: %w", err)
	}
	if err = feed.SetOnline(ctx, true); err != nil {
		s.setOnline(courierID, false)
		return entities.CourierSession{}, fmt.Errorf("open feed: %w", err)
	}
	if !wasOnline {
		OnlineCouriers.Inc()
	}

	s.resumeTracking(ctx, courierID)

	session := feed.Session()
	s.log.Info("courier online",
		logger.NewField("courier_id", courierID),
		logger.NewField("city", session.City),
		logger.NewField("city_degraded", session.CityDegraded),
	)
	return session, nil
}

// GoOffline закрывает подписку и останавливает трекинг. Назначенные заказы остаются за курьером.
func (s *Service) GoOffline(ctx context.Context, courierID int64) error {
	if courierID <= 0 {
		return ErrInvalidCourierID
	}

	s.mu.Lock()
	state, ok := s.states[courierID]
	if !ok || !state.online {
		s.mu.Unlock()
		return nil
	}
	state.online = false
	feed := state.feed
	s.mu.Unlock()

	OnlineCouriers.Dec()
	s.tracker.StopCourier(courierID)
	if err := feed.SetOnline(ctx, false); err != nil {
		return fmt.Errorf("close feed: %w", err)
	}

	s.log.Info("courier offline", logger.NewField("courier_id", courierID))
	return nil
}

// ReportPosition принимает сэмпл с устройства. Сэмплы старее последнего отбрасываются.
func (s *Service) ReportPosition(ctx context.Context, courierID int64, sample entities.DriverLocation) error {
	if courierID <= 0 {
		return ErrInvalidCourierID
	}
	if !validCoordinates(sample.Coordinates) {
		return ErrInvalidPosition
	}

	if !s.positions.Record(courierID, sample) {
		return ErrStalePosition
	}

	s.mu.Lock()
	state := s.stateLocked(courierID)
	feed := state.feed
	online := state.online
	recheck := state.geocodedAt == nil ||
		geo.DistanceMeters(*state.geocodedAt, sample.Coordinates) >= s.cfg.CityRecheckMeters
	s.mu.Unlock()

	if feed == nil || !online {
		return nil
	}

	point := sample.Coordinates
	feed.UpdatePosition(&point)
	if !recheck {
		return nil
	}

	courier, err := s.couriers.GetCourier(ctx, courierID)
	if err != nil {
		return fmt.Errorf("load courier: %w", err)
	}
	match := s.resolveCity(ctx, courier, &point)

	s.mu.Lock()
	state.geocodedAt = &point
	s.mu.Unlock()

	if err = feed.UpdateCity(ctx, match); err != nil {
		return fmt.Errorf("switch city: %w", err)
	}
	return nil
}

// LatestPosition - последняя принятая позиция курьера.
func (s *Service) LatestPosition(courierID int64) (entities.DriverLocation, bool) {
	return s.positions.LatestPosition(courierID)
}

// Feed возвращает ленту курьера. false - курьер еще ни разу не выходил онлайн.
func (s *Service) Feed(courierID int64) (*dispatch.Feed, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[courierID]
	if !ok || state.feed == nil {
		return nil, false
	}
	return state.feed, true
}

// CurrentFeed - текущий снимок ленты. Без сессии лента пустая.
func (s *Service) CurrentFeed(courierID int64) []entities.FeedItem {
	feed, ok := s.Feed(courierID)
	if !ok {
		return []entities.FeedItem{}
	}
	return feed.Current()
}

// WatchFeed подписывает на обновления ленты до отмены ctx.
func (s *Service) WatchFeed(ctx context.Context, courierID int64) (<-chan []entities.FeedItem, error) {
	feed, ok := s.Feed(courierID)
	if !ok {
		return nil, ErrNoSession
	}
	return feed.Watch(ctx), nil
}

// Close закрывает все ленты.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, state := range s.states {
		if state.feed != nil {
			state.feed.Close()
		}
		delete(s.states, id)
	}
}

func (s *Service) stateLocked(courierID int64) *courierState {
	state, ok := s.states[courierID]
	if !ok {
		state = &courierState{}
		s.states[courierID] = state
	}
	return state
}

func (s *Service) setOnline(courierID int64, online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.states[courierID]; ok {
		state.online = online
	}
}

func (s *Service) resumeTracking(ctx context.Context, courierID int64) {
	order, err := s.orders.GetPickedUpByDriver(ctx, courierID)
	if err != nil {
		if !errors.Is(err, entities.ErrOrderNotFound) {
			s.log.Warn("look up picked up order",
				logger.NewField("courier_id", courierID),
				logger.NewField("error", err),
			)
		}
		return
	}
	s.tracker.Start(courierID, order.ID)
}

// resolveCity определяет город по координатам. Без координат или при ошибке геокодера
// используется домашний город курьера.
func (s *Service) resolveCity(ctx context.Context, courier *entities.Courier, point *entities.Coordinates) geo.CityMatch {
	report := func(match geo.CityMatch, label string) geo.CityMatch {
		if match.Degraded {
			DegradedCityTotal.Inc()
			s.log.Warn("city label matched no served city, using default",
				logger.NewField("courier_id", courier.ID),
				logger.NewField("label", label),
				logger.NewField("city", match.City),
			)
		}
		return match
	}

	if point == nil {
		return report(s.catalog.Reconcile(courier.HomeCity), courier.HomeCity)
	}

	// соседние курьеры с одинаково округленными координатами делят один запрос
	key := fmt.Sprintf("%.3f,%.3f", point.Latitude, point.Longitude)
	label, err, _ := s.geocodes.Do(key, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.GeocodeTimeout)
		defer cancel()
		return s.geocoder.ReverseGeocode(ctx, *point)
	})
	if err != nil {
		GeocodeFailuresTotal.Inc()
		s.log.Warn("reverse geocoding failed, using home city",
			logger.NewField("courier_id", courier.ID),
			logger.NewField("error", err),
		)
		return report(s.catalog.Reconcile(courier.HomeCity), courier.HomeCity)
	}

	return report(s.catalog.Reconcile(label.(string)), label.(string))
}

func validCoordinates(c entities.Coordinates) bool {
	return !math.IsNaN(c.Latitude) && !math.IsNaN(c.Longitude) &&
		c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
