package bnforest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	modelsFitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bnforest_models_fitted_total",
		Help: "Conditional models fitted, by model kind.",
	}, []string{"kind"})

	modelFitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bnforest_model_fit_seconds",
		Help:    "Time spent fitting one conditional model.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4.4min
	}, []string{"kind"})

	rowsSampled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bnforest_rows_sampled_total",
		Help: "Synthetic rows produced.",
	})
)
