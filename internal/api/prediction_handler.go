package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shaiso/Predictor/internal/domain"
	"github.com/shaiso/Predictor/internal/telemetry"
)

// recentLimit — сколько записей отдаёт /predictions.
const recentLimit = 10

// labels — метки, из которых mock-инференс выбирает ответ.
var labels = []string{"cats", "dogs", "birds", "fish"}

// ListPredictions возвращает последние предсказания из хранилища.
func (h *Handler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.Recent(r.Context(), recentLimit)
	if err != nil {
		InternalError(w, h.logger, err)
		return
	}

	// count — общее число записей в хранилище, список ограничен
	// recentLimit, поэтому count может превышать его длину.
	count, err := h.store.Count(r.Context())
	if err != nil {
		InternalError(w, h.logger, err)
		return
	}

	predictions := make([]Prediction, len(records))
	for i, rec := range records {
		predictions[i] = PredictionFromDomain(rec)
	}

	JSON(w, http.StatusOK, PredictionsResponse{
		Predictions: predictions,
		Count:       count,
		Timestamp:   time.Now().UTC(),
	})
}

// Predict принимает вектор признаков и возвращает предсказание.
//
// Инференс — заглушка: метка выбирается случайно, уверенность
// лежит в [0.7, 1.0). Реальная модель подключается на этом же месте.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}
	if len(req.Features) == 0 {
		BadRequest(w, "features must not be empty")
		return
	}

	rec := &domain.PredictionRecord{
		ID:         uuid.New(),
		Label:      labels[rand.Intn(len(labels))],
		Confidence: 0.7 + rand.Float64()*0.3,
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.store.Insert(r.Context(), rec); err != nil {
		InternalError(w, h.logger, err)
		return
	}

	telemetry.PredictionsTotal.Inc()
	h.logger.Info("prediction served",
		"id", rec.ID,
		"label", rec.Label,
		"features", len(req.Features),
	)

	JSON(w, http.StatusOK, PredictionFromDomain(*rec))
}
