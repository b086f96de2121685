package api

import (
	"time"

	"github.com/shaiso/Predictor/internal/domain"
)

// HealthResponse — ответ /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// Prediction — одно предсказание в ответе API.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// PredictionFromDomain конвертирует domain.PredictionRecord в Prediction.
func PredictionFromDomain(rec domain.PredictionRecord) Prediction {
	return Prediction{
		Label:      rec.Label,
		Confidence: rec.Confidence,
	}
}

// PredictionsResponse — ответ /predictions.
type PredictionsResponse struct {
	Predictions []Prediction `json:"predictions"`
	Count       int          `json:"count"`
	Timestamp   time.Time    `json:"timestamp"`
}

// PredictRequest — запрос на предсказание.
type PredictRequest struct {
	Features []float64 `json:"features"`
}

// MetricsResponse — ответ /metrics. Имена полей фиксированы протоколом.
type MetricsResponse struct {
	Uptime        string  `json:"uptime"`
	RequestsTotal int64   `json:"requests_total"`
	MemoryUsageMB float64 `json:"memory_usage_mb"`
	Goroutines    int     `json:"goroutines"`
	CPUCores      int     `json:"cpu_cores"`
}
