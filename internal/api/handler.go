package api

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/shaiso/Predictor/internal/domain"
)

// PredictionStore — хранилище предсказаний.
// Реализации: repo.MemoryStore и repo.PredictionRepo.
type PredictionStore interface {
	Insert(ctx context.Context, rec *domain.PredictionRecord) error
	Recent(ctx context.Context, limit int) ([]domain.PredictionRecord, error)
	Count(ctx context.Context) (int, error)
}

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	store     PredictionStore
	logger    *slog.Logger
	version   string
	startTime time.Time
	requests  atomic.Int64
}

// Config — конфигурация для создания Handler.
type Config struct {
	Store   PredictionStore
	Logger  *slog.Logger
	Version string
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		store:     cfg.Store,
		logger:    cfg.Logger,
		version:   cfg.Version,
		startTime: time.Now(),
	}
}
