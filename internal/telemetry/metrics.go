package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus метрики predictor-api.
var (
	// HTTPRequestsTotal — общее число обработанных HTTP-запросов.
	HTTPRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_api_http_requests_total",
		Help: "Total HTTP requests handled by predictor-api",
	})

	// PredictionsTotal — общее число выполненных предсказаний.
	PredictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_api_predictions_total",
		Help: "Total predictions served by the predict endpoint",
	})
)
