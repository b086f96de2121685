// Package telemetry обеспечивает наблюдаемость системы.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики
//
// API-сервис использует единый формат логирования
// и экспортирует Prometheus метрики на /metrics/prometheus.
package telemetry
