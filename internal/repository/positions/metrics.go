package positions

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var Recorded = promauto.NewCounter(prometheus.CounterOpts{
	Name: "courier_positions_recorded_total",
	Help: "Total number of accepted courier position samples",
})
