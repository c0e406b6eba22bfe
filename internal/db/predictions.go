package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ivf-predictor/webclient/internal/model"
)

// EnsurePredictionSchema - predictions 테이블 생성 (없으면)
func (p *Postgres) EnsurePredictionSchema(ctx context.Context) error {
	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS predictions (
			id              UUID             PRIMARY KEY,
			features        JSONB            NOT NULL,
			return_proba    BOOLEAN          NOT NULL,
			predicted_class INTEGER          NOT NULL,
			confidence      DOUBLE PRECISION NOT NULL,
			probabilities   JSONB            NOT NULL DEFAULT '{}',
			model           TEXT             NOT NULL DEFAULT '',
			created_at      TIMESTAMPTZ      NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS predictions_created_at_idx ON predictions (created_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to create predictions table: %w", err)
	}
	return nil
}

// InsertPrediction - 예측 결과 한 건 저장
func (p *Postgres) InsertPrediction(ctx context.Context, rec model.PredictionRecord) error {
	features, err := json.Marshal(rec.Features)
	if err != nil {
		return fmt.Errorf("failed to marshal features: %w", err)
	}
	probs := rec.Probabilities
	if probs == nil {
		probs = map[string]float64{}
	}
	probsJSON, err := json.Marshal(probs)
	if err != nil {
		return fmt.Errorf("failed to marshal probabilities: %w", err)
	}

	_, err = p.Pool.Exec(ctx, `
		INSERT INTO predictions (id, features, return_proba, predicted_class, confidence, probabilities, model, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, rec.ID, features, rec.ReturnProba, rec.PredictedClass, rec.Confidence, probsJSON, rec.Model, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}
	return nil
}

// ListPredictions - 최근 예측 목록 조회 (최신순)
func (p *Postgres) ListPredictions(ctx context.Context, limit int) ([]model.PredictionRecord, error) {
	rows, err := p.Pool.Query(ctx, `
		SELECT id::text, features, return_proba, predicted_class, confidence, probabilities, model, created_at
		FROM predictions
		ORDER BY created_at DESC
		LIMIT $1;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var list []model.PredictionRecord
	for rows.Next() {
		var rec model.PredictionRecord
		var featuresJSON, probsJSON []byte
		if err := rows.Scan(&rec.ID, &featuresJSON, &rec.ReturnProba, &rec.PredictedClass, &rec.Confidence, &probsJSON, &rec.Model, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		if err := json.Unmarshal(featuresJSON, &rec.Features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal features: %w", err)
		}
		if err := json.Unmarshal(probsJSON, &rec.Probabilities); err != nil {
			return nil, fmt.Errorf("failed to unmarshal probabilities: %w", err)
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate predictions: %w", err)
	}
	if list == nil {
		list = []model.PredictionRecord{}
	}
	return list, nil
}
