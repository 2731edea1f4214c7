// Package positions хранит последние позиции курьеров в памяти процесса.
// Позиция устройства - эфемерное состояние сессии, в БД пишется только трекинг заказа.
package positions

import (
	"sync"

	"dispatch/internal/entities"
)

type Store struct {
	mu     sync.RWMutex
	latest map[int64]entities.DriverLocation
}

func New() *Store {
	return &Store{latest: make(map[int64]entities.DriverLocation)}
}

// Record сохраняет сэмпл, если он строго новее сохраненного.
func (s *Store) Record(courierID int64, sample entities.DriverLocation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.latest[courierID]; ok && !sample.RecordedAt.After(last.RecordedAt) {
		return false
	}
	s.latest[courierID] = sample
	Recorded.Inc()
	return true
}

func (s *Store) LatestPosition(courierID int64) (entities.DriverLocation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sample, ok := s.latest[courierID]
	return sample, ok
}
