package orderwatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orderwatch_notifications_total",
			Help: "Total number of order change notifications received",
		},
	)

	RefreshErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orderwatch_refresh_errors_total",
			Help: "Total number of failed city snapshot refreshes",
		},
	)

	Subscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "orderwatch_subscribers",
			Help: "Current number of feed subscriptions",
		},
	)
)
