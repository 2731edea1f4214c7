package tracking

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveJobs = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tracking_active_jobs",
		Help: "Couriers with live location publishing",
	})

	PublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracking_locations_published_total",
		Help: "Driver locations written to orders",
	})

	PublishErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracking_publish_errors_total",
		Help: "Failed driver location writes",
	})
)
