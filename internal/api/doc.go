// Package api содержит HTTP API сервер предсказаний.
//
// Структура:
//   - handler.go            — Handler с DI (хранилище, logger)
//   - routes.go             — регистрация маршрутов
//   - middleware.go         — middleware (logging, recovery, подсчёт запросов)
//   - response.go           — JSON-ответы и ошибки
//   - dto.go                — Data Transfer Objects (request/response)
//   - health_handler.go     — обработчик /health
//   - prediction_handler.go — обработчики /predictions и /predict
//   - metrics_handler.go    — обработчик /metrics
//
// Формы ответов фиксированы протоколом: клиенты декодируют поля
// по именам (status, predictions, requests_total и т.д.), поэтому
// ответы пишутся плоским JSON без обёртки.
package api
