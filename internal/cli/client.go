package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// --- Response types (дублируются из api/dto.go, CLI не импортирует internal/api) ---

// HealthResponse — ответ /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// Prediction — одно предсказание.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// PredictionsResponse — ответ /predictions.
type PredictionsResponse struct {
	Predictions []Prediction `json:"predictions"`
	Count       int          `json:"count"`
	Timestamp   string       `json:"timestamp"`
}

// MetricsResponse — ответ /metrics.
type MetricsResponse struct {
	Uptime        string  `json:"uptime"`
	RequestsTotal int64   `json:"requests_total"`
	MemoryUsageMB float64 `json:"memory_usage_mb"`
	Goroutines    int     `json:"goroutines"`
	CPUCores      int     `json:"cpu_cores"`
}

// --- Request types ---

// PredictRequest — запрос на предсказание.
type PredictRequest struct {
	Features []float64 `json:"features"`
}

// --- Wire types ---
//
// Промежуточные структуры с указателями: encoding/json не отличает
// отсутствующее поле от нулевого значения, а декодирование должно
// быть «всё или ничего». nil после Unmarshal — значит поля не было.

type healthWire struct {
	Status    *string `json:"status"`
	Timestamp *string `json:"timestamp"`
	Version   *string `json:"version"`
}

type predictionWire struct {
	Label      *string  `json:"label"`
	Confidence *float64 `json:"confidence"`
}

type predictionsWire struct {
	Predictions *[]predictionWire `json:"predictions"`
	Count       *int              `json:"count"`
	Timestamp   *string           `json:"timestamp"`
}

type metricsWire struct {
	Uptime        *string  `json:"uptime"`
	RequestsTotal *int64   `json:"requests_total"`
	MemoryUsageMB *float64 `json:"memory_usage_mb"`
	Goroutines    *int     `json:"goroutines"`
	CPUCores      *int     `json:"cpu_cores"`
}

// --- Client ---

// Client — HTTP-клиент для prediction API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CheckHealth возвращает статус сервиса.
func (c *Client) CheckHealth() (*HealthResponse, error) {
	body, status, err := c.do(http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}

	var w healthWire
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, decodeError(status, err)
	}
	if w.Status == nil || w.Timestamp == nil || w.Version == nil {
		return nil, missingFieldError("health", w.firstMissing())
	}

	return &HealthResponse{
		Status:    *w.Status,
		Timestamp: *w.Timestamp,
		Version:   *w.Version,
	}, nil
}

// ListPredictions возвращает последние предсказания.
func (c *Client) ListPredictions() (*PredictionsResponse, error) {
	body, status, err := c.do(http.MethodGet, "/predictions", nil)
	if err != nil {
		return nil, err
	}

	var w predictionsWire
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, decodeError(status, err)
	}
	if w.Predictions == nil || w.Count == nil || w.Timestamp == nil {
		return nil, missingFieldError("predictions", w.firstMissing())
	}

	predictions := make([]Prediction, len(*w.Predictions))
	for i, pw := range *w.Predictions {
		if pw.Label == nil || pw.Confidence == nil {
			return nil, missingFieldError("predictions", pw.firstMissing())
		}
		predictions[i] = Prediction{Label: *pw.Label, Confidence: *pw.Confidence}
	}

	return &PredictionsResponse{
		Predictions: predictions,
		Count:       *w.Count,
		Timestamp:   *w.Timestamp,
	}, nil
}

// Predict отправляет вектор признаков и возвращает предсказание.
func (c *Client) Predict(features []float64) (*Prediction, error) {
	body, status, err := c.do(http.MethodPost, "/predict", PredictRequest{Features: features})
	if err != nil {
		return nil, err
	}

	var w predictionWire
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, decodeError(status, err)
	}
	if w.Label == nil || w.Confidence == nil {
		return nil, missingFieldError("predict", w.firstMissing())
	}

	return &Prediction{Label: *w.Label, Confidence: *w.Confidence}, nil
}

// GetMetrics возвращает метрики сервиса.
func (c *Client) GetMetrics() (*MetricsResponse, error) {
	body, status, err := c.do(http.MethodGet, "/metrics", nil)
	if err != nil {
		return nil, err
	}

	var w metricsWire
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, decodeError(status, err)
	}
	if w.Uptime == nil || w.RequestsTotal == nil || w.MemoryUsageMB == nil ||
		w.Goroutines == nil || w.CPUCores == nil {
		return nil, missingFieldError("metrics", w.firstMissing())
	}

	return &MetricsResponse{
		Uptime:        *w.Uptime,
		RequestsTotal: *w.RequestsTotal,
		MemoryUsageMB: *w.MemoryUsageMB,
		Goroutines:    *w.Goroutines,
		CPUCores:      *w.CPUCores,
	}, nil
}

// --- HTTP helpers ---

// do выполняет один запрос и возвращает сырое тело и HTTP-статус.
// Тело возвращается при любом статусе: интерпретация остаётся за
// декодером, не-2xx с нечитаемым телом всплывёт как ErrDecode.
func (c *Client) do(method, path string, body any) ([]byte, int, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: marshal request: %v", ErrTransport, err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: create request: %v", ErrTransport, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}

	return data, resp.StatusCode, nil
}

func decodeError(status int, err error) error {
	return fmt.Errorf("%w: HTTP %d: %v", ErrDecode, status, err)
}

func missingFieldError(response, field string) error {
	return fmt.Errorf("%w: %s response is missing field %q", ErrDecode, response, field)
}

// --- firstMissing: имя первого отсутствующего поля для сообщения об ошибке ---

func (w *healthWire) firstMissing() string {
	switch {
	case w.Status == nil:
		return "status"
	case w.Timestamp == nil:
		return "timestamp"
	default:
		return "version"
	}
}

func (w *predictionWire) firstMissing() string {
	if w.Label == nil {
		return "label"
	}
	return "confidence"
}

func (w *predictionsWire) firstMissing() string {
	switch {
	case w.Predictions == nil:
		return "predictions"
	case w.Count == nil:
		return "count"
	default:
		return "timestamp"
	}
}

func (w *metricsWire) firstMissing() string {
	switch {
	case w.Uptime == nil:
		return "uptime"
	case w.RequestsTotal == nil:
		return "requests_total"
	case w.MemoryUsageMB == nil:
		return "memory_usage_mb"
	case w.Goroutines == nil:
		return "goroutines"
	default:
		return "cpu_cores"
	}
}
