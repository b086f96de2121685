package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Middleware chain
	chain := Chain(
		Recovery(h.logger),
		Logging(h.logger),
		Counting(&h.requests),
	)

	mux.Handle("GET /health", chain(http.HandlerFunc(h.Health)))
	mux.Handle("GET /predictions", chain(http.HandlerFunc(h.ListPredictions)))
	mux.Handle("POST /predict", chain(http.HandlerFunc(h.Predict)))
	mux.Handle("GET /metrics", chain(http.HandlerFunc(h.Metrics)))
}
