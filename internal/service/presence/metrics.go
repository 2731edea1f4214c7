package presence

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OnlineCouriers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "presence_online_couriers",
		Help: "Couriers currently online",
	})

	GeocodeFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "presence_geocode_failures_total",
		Help: "Reverse geocoding failures that fell back to the home city",
	})

	DegradedCityTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "presence_degraded_city_total",
		Help: "City labels that matched no served city",
	})
)
