package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ivf-predictor/webclient/internal/model"
	"github.com/rs/zerolog/log"
)

// ErrHistoryDisabled is returned by history reads when no store is configured.
var ErrHistoryDisabled = errors.New("prediction history is disabled")

// predictionRepo - DB 인터페이스
type predictionRepo interface {
	InsertPrediction(ctx context.Context, rec model.PredictionRecord) error
	ListPredictions(ctx context.Context, limit int) ([]model.PredictionRecord, error)
}

// PredictorClient - 예측 서비스 클라이언트 인터페이스
type PredictorClient interface {
	Predict(ctx context.Context, req model.PredictionRequest) (*model.PredictResult, error)
	Health(ctx context.Context) (*model.ServiceHealth, error)
	FeatureOrder(ctx context.Context) ([]string, error)
}

// PredictionService forwards predictions to the service and records the decoded results.
type PredictionService struct {
	client PredictorClient
	repo   predictionRepo
	now    func() time.Time
}

// NewPredictionService creates the service; repo may be nil to disable history.
func NewPredictionService(client PredictorClient, repo predictionRepo) *PredictionService {
	return &PredictionService{client: client, repo: repo, now: time.Now}
}

func (s *PredictionService) Predict(ctx context.Context, req model.PredictionRequest) (*model.PredictResult, error) {
	res, err := s.client.Predict(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("kind", string(model.KindOf(err))).Msg("Prediction request failed")
		return nil, err
	}

	log.Info().
		Int("predicted_class", res.Response.PredictedClass).
		Float64("confidence", res.Response.Confidence).
		Bool("return_proba", req.ReturnProba).
		Bool("missing_features", req.Features.HasMissing()).
		Msg("Prediction received")

	s.record(ctx, req, res.Response)
	return res, nil
}

// record stores the prediction; failures are logged and never reach the caller.
func (s *PredictionService) record(ctx context.Context, req model.PredictionRequest, resp model.PredictionResponse) {
	if s.repo == nil {
		return
	}
	rec := model.PredictionRecord{
		ID:             uuid.NewString(),
		Features:       req.Features,
		ReturnProba:    req.ReturnProba,
		PredictedClass: resp.PredictedClass,
		Confidence:     resp.Confidence,
		Probabilities:  resp.Probabilities,
		Model:          resp.Model,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.InsertPrediction(context.WithoutCancel(ctx), rec); err != nil {
		log.Error().Err(err).Str("prediction_id", rec.ID).Msg("Failed to save prediction")
	}
}

func (s *PredictionService) HistoryEnabled() bool {
	return s.repo != nil
}

func (s *PredictionService) ListPredictions(ctx context.Context, limit int) ([]model.PredictionRecord, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.ListPredictions(ctx, limit)
}

func (s *PredictionService) Health(ctx context.Context) (*model.ServiceHealth, error) {
	return s.client.Health(ctx)
}

// FeatureOrder returns the service's feature order and whether it matches the form schema.
func (s *PredictionService) FeatureOrder(ctx context.Context) (*model.FeatureOrderResponse, error) {
	order, err := s.client.FeatureOrder(ctx)
	if err != nil {
		return nil, err
	}
	schema := model.FeatureNames()
	return &model.FeatureOrderResponse{
		FeatureOrder:  order,
		Schema:        schema,
		MatchesSchema: sameOrder(order, schema),
	}, nil
}

func sameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
