package feed_stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OpenStreams = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "feed_stream_open",
		Help: "Number of open courier feed streams",
	})

	EventsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feed_stream_events_sent_total",
		Help: "Total number of feed snapshots pushed to couriers",
	})
)
