package domain

import (
	"time"

	"github.com/google/uuid"
)

// PredictionRecord — сохранённый результат предсказания.
//
// Запись создаётся когда:
// - Пользователь отправляет признаки через POST /predict (API/CLI)
// - Хранилище засеивается демонстрационными данными при старте
type PredictionRecord struct {
	// ID — уникальный идентификатор записи.
	ID uuid.UUID `json:"id"`

	// Label — предсказанная метка класса.
	Label string `json:"label"`

	// Confidence — уверенность модели в диапазоне [0.0, 1.0].
	Confidence float64 `json:"confidence"`

	// CreatedAt — время создания записи.
	CreatedAt time.Time `json:"created_at"`
}
