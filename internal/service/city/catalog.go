package city

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"dispatch/internal/geo"
)

// Catalog - кэш справочника городов. До первой загрузки содержит только город по умолчанию.
type Catalog struct {
	repo        Repository
	defaultCity string
	cities      atomic.Pointer[[]string]
}

func New(repo Repository, defaultCity string) *Catalog {
	c := &Catalog{
		repo:        repo,
		defaultCity: defaultCity,
	}
	initial := []string{defaultCity}
	c.cities.Store(&initial)
	return c
}

// Refresh перечитывает справочник. Пустой справочник не заменяет текущий.
func (c *Catalog) Refresh(ctx context.Context) (int, error) {
	cities, err := c.repo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("refresh city catalog: %w", err)
	}
	if len(cities) == 0 {
		return 0, ErrEmptyCatalog
	}

	c.cities.Store(&cities)
	return len(cities), nil
}

func (c *Catalog) Cities() []string {
	return *c.cities.Load()
}

func (c *Catalog) DefaultCity() string {
	return c.defaultCity
}

// Canonical ищет город без учета регистра и возвращает написание из справочника.
func (c *Catalog) Canonical(city string) (string, bool) {
	city = strings.TrimSpace(city)
	for _, known := range c.Cities() {
		if strings.EqualFold(known, city) {
			return known, true
		}
	}
	return "", false
}

// Reconcile сопоставляет произвольную метку геокодера с городом справочника.
func (c *Catalog) Reconcile(rawLabel string) geo.CityMatch {
	return geo.ReconcileCity(rawLabel, c.Cities(), c.defaultCity)
}
