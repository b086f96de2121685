package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaiso/Predictor/internal/domain"
)

// PredictionRepo — репозиторий для работы с predictions.
//
// Схема:
//
//	CREATE TABLE predictions (
//	    id         UUID PRIMARY KEY,
//	    label      TEXT NOT NULL,
//	    confidence DOUBLE PRECISION NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type PredictionRepo struct {
	pool *pgxpool.Pool
}

// NewPredictionRepo создаёт новый PredictionRepo.
func NewPredictionRepo(pool *pgxpool.Pool) *PredictionRepo {
	return &PredictionRepo{pool: pool}
}

// Insert сохраняет новую запись предсказания.
func (r *PredictionRepo) Insert(ctx context.Context, rec *domain.PredictionRecord) error {
	query := `
		INSERT INTO predictions (id, label, confidence, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.Label,
		rec.Confidence,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}
	return nil
}

// Count возвращает общее число записей.
func (r *PredictionRepo) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM predictions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count predictions: %w", err)
	}
	return int(count), nil
}

// Recent возвращает последние записи, новые первыми.
func (r *PredictionRepo) Recent(ctx context.Context, limit int) ([]domain.PredictionRecord, error) {
	query := `
		SELECT id, label, confidence, created_at
		FROM predictions
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()

	var records []domain.PredictionRecord
	for rows.Next() {
		rec, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// scanPrediction сканирует одну строку в PredictionRecord.
func scanPrediction(row pgx.Row) (*domain.PredictionRecord, error) {
	var rec domain.PredictionRecord
	err := row.Scan(
		&rec.ID,
		&rec.Label,
		&rec.Confidence,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan prediction: %w", err)
	}
	return &rec, nil
}
