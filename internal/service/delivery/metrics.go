package delivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_transitions_total",
			Help: "Applied courier status transitions",
		},
		[]string{"to"},
	)

	LoyaltyPointsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_loyalty_points_awarded_total",
			Help: "Loyalty points credited on delivery",
		},
	)

	UploadFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_proof_upload_failures_total",
			Help: "Failed proof of delivery uploads",
		},
	)
)
