package claim

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ClaimsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dispatch_claims_total",
		Help: "Order claims by outcome",
	},
	[]string{"outcome"},
)

var RejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "dispatch_rejections_total",
		Help: "Orders rejected by couriers",
	},
)
