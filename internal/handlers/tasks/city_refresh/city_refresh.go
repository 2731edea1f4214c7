package city_refresh

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type CityRefresh struct {
	log      logger.Logger
	catalog  Catalog
	interval time.Duration
}

func NewCityRefresh(log logger.Logger, catalog Catalog, interval time.Duration) *CityRefresh {
	return &CityRefresh{
		log:      log,
		catalog:  catalog,
		interval: interval,
	}
}

func (c *CityRefresh) TTL() time.Duration {
	return c.interval
}

func (c *CityRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	count, err := c.catalog.Refresh(ctxWithTimeout)
	if err != nil {
		return err
	}

	c.log.With(
		logger.NewField("cities", count),
	).Info("city catalog refreshed")

	return nil
}

func (c *CityRefresh) Info() string {
	return "city catalog refresh"
}
