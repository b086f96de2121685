package repo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shaiso/Predictor/internal/domain"
)

// maxMemoryRecords — предел записей в памяти, старые вытесняются.
const maxMemoryRecords = 100

// MemoryStore — хранилище предсказаний в памяти.
//
// Используется когда DB_URL не задан: сервис работает как
// самодостаточная демонстрация с предзаполненными данными.
type MemoryStore struct {
	mu      sync.Mutex
	records []domain.PredictionRecord
}

// NewMemoryStore создаёт хранилище, засеянное демонстрационными записями.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	now := time.Now().UTC()

	seed := []struct {
		label      string
		confidence float64
	}{
		{"cats", 0.95},
		{"dogs", 0.87},
		{"birds", 0.72},
	}
	for i, p := range seed {
		s.records = append(s.records, domain.PredictionRecord{
			ID:         uuid.New(),
			Label:      p.label,
			Confidence: p.confidence,
			CreatedAt:  now.Add(time.Duration(i-len(seed)) * time.Minute),
		})
	}
	return s
}

// Insert сохраняет новую запись предсказания.
func (s *MemoryStore) Insert(_ context.Context, rec *domain.PredictionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, *rec)
	if len(s.records) > maxMemoryRecords {
		s.records = s.records[len(s.records)-maxMemoryRecords:]
	}
	return nil
}

// Count возвращает общее число записей.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records), nil
}

// Recent возвращает последние записи, новые первыми.
func (s *MemoryStore) Recent(_ context.Context, limit int) ([]domain.PredictionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}

	records := make([]domain.PredictionRecord, 0, limit)
	for i := len(s.records) - 1; i >= len(s.records)-limit; i-- {
		records = append(records, s.records[i])
	}
	return records, nil
}
