package proofs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var UploadDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "proof_upload_duration_seconds",
		Help:    "Duration of proof-of-delivery photo uploads",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	},
	[]string{"result"},
)
