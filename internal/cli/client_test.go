package cli

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckHealth_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/health" {
			t.Errorf("expected /health, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "healthy",
			"timestamp": "2024-01-01T00:00:00Z",
			"version":   "1.0.0",
		})
	}))
	defer server.Close()

	health, err := NewClient(server.URL).CheckHealth()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("expected status healthy, got %s", health.Status)
	}
	if health.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", health.Version)
	}
	if health.Timestamp != "2024-01-01T00:00:00Z" {
		t.Errorf("unexpected timestamp: %s", health.Timestamp)
	}
}

func TestCheckHealth_MissingField(t *testing.T) {
	// Ответ без version: ErrDecode, а не запись с пустым полем.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "healthy",
			"timestamp": "2024-01-01T00:00:00Z",
		})
	}))
	defer server.Close()

	health, err := NewClient(server.URL).CheckHealth()
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if health != nil {
		t.Errorf("expected nil response on decode failure, got %+v", health)
	}
}

func TestCheckHealth_WrongFieldType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status":    42,
			"timestamp": "2024-01-01T00:00:00Z",
			"version":   "1.0.0",
		})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).CheckHealth()
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestCheckHealth_Transport(t *testing.T) {
	// Сервер закрыт до запроса: соединение невозможно.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewClient(server.URL).CheckHealth()
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestListPredictions_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predictions" {
			t.Errorf("expected /predictions, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"predictions": []map[string]any{
				{"label": "cats", "confidence": 0.95},
				{"label": "dogs", "confidence": 0.87},
			},
			"count":     2,
			"timestamp": "2024-01-01T00:00:00Z",
		})
	}))
	defer server.Close()

	response, err := NewClient(server.URL).ListPredictions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Count != 2 {
		t.Errorf("expected count 2, got %d", response.Count)
	}
	if len(response.Predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(response.Predictions))
	}

	// Порядок полученный, без пересортировки.
	if response.Predictions[0].Label != "cats" || response.Predictions[1].Label != "dogs" {
		t.Errorf("order not preserved: %+v", response.Predictions)
	}
}

func TestListPredictions_MissingElementField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"predictions": []map[string]any{
				{"label": "cats"},
			},
			"count":     1,
			"timestamp": "2024-01-01T00:00:00Z",
		})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).ListPredictions()
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestPredict_SendsRequest(t *testing.T) {
	var received PredictRequest
	var contentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/predict" {
			t.Errorf("expected /predict, got %s", r.URL.Path)
		}
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"label": "cats", "confidence": 0.92})
	}))
	defer server.Close()

	prediction, err := NewClient(server.URL).Predict([]float64{0.1, 0.2, 0.3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prediction.Label != "cats" || prediction.Confidence != 0.92 {
		t.Errorf("unexpected prediction: %+v", prediction)
	}

	if contentType != "application/json" {
		t.Errorf("expected application/json, got %s", contentType)
	}
	if len(received.Features) != 3 || received.Features[0] != 0.1 {
		t.Errorf("unexpected request features: %v", received.Features)
	}
}

func TestPredict_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Predict([]float64{0.1})
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestGetMetrics_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/metrics" {
			t.Errorf("expected /metrics, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"uptime":          "1h30m0s",
			"requests_total":  42,
			"memory_usage_mb": 12.34,
			"goroutines":      8,
			"cpu_cores":       4,
		})
	}))
	defer server.Close()

	metrics, err := NewClient(server.URL).GetMetrics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics.Uptime != "1h30m0s" {
		t.Errorf("unexpected uptime: %s", metrics.Uptime)
	}
	if metrics.RequestsTotal != 42 {
		t.Errorf("expected 42 requests, got %d", metrics.RequestsTotal)
	}
	if metrics.Goroutines != 8 || metrics.CPUCores != 4 {
		t.Errorf("unexpected runtime values: %+v", metrics)
	}
}

func TestGetMetrics_MissingField(t *testing.T) {
	// Поле goroutines отсутствует — имена полей фиксированы протоколом.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"uptime":          "1h",
			"requests_total":  1,
			"memory_usage_mb": 1.0,
			"cpu_cores":       4,
		})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GetMetrics()
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestErrorStatus_UndecodableBody(t *testing.T) {
	// Не-2xx с нечитаемым телом — ErrDecode со статусом, не тихий успех.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).CheckHealth()
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}
