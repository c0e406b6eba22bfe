package model

import "time"

// PredictionRecord - predictions 테이블 한 행
type PredictionRecord struct {
	ID             string             `json:"id"`
	Features       FeatureVector      `json:"features"`
	ReturnProba    bool               `json:"return_proba"`
	PredictedClass int                `json:"predicted_class"`
	Confidence     float64            `json:"confidence"`
	Probabilities  map[string]float64 `json:"probabilities"`
	Model          string             `json:"model"`
	CreatedAt      time.Time          `json:"created_at"`
}
