package api

import (
	"net/http"
	"runtime"
	"time"
)

// Metrics возвращает метрики процесса в формате протокола.
// Prometheus-метрики отдаются отдельно через /metrics/prometheus.
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	JSON(w, http.StatusOK, MetricsResponse{
		Uptime:        time.Since(h.startTime).String(),
		RequestsTotal: h.requests.Load(),
		MemoryUsageMB: float64(m.Alloc) / 1024 / 1024,
		Goroutines:    runtime.NumGoroutine(),
		CPUCores:      runtime.NumCPU(),
	})
}
