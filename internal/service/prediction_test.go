package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ivf-predictor/webclient/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePredictorClient struct {
	result *model.PredictResult
	err    error
	order  []string
}

func (f *fakePredictorClient) Predict(ctx context.Context, req model.PredictionRequest) (*model.PredictResult, error) {
	return f.result, f.err
}

func (f *fakePredictorClient) Health(ctx context.Context) (*model.ServiceHealth, error) {
	return &model.ServiceHealth{Status: "ok", ModelLoaded: true}, nil
}

func (f *fakePredictorClient) FeatureOrder(ctx context.Context) ([]string, error) {
	return f.order, nil
}

type fakePredictionRepo struct {
	saved     []model.PredictionRecord
	insertErr error
}

func (f *fakePredictionRepo) InsertPrediction(ctx context.Context, rec model.PredictionRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.saved = append(f.saved, rec)
	return nil
}

func (f *fakePredictionRepo) ListPredictions(ctx context.Context, limit int) ([]model.PredictionRecord, error) {
	if limit < len(f.saved) {
		return f.saved[:limit], nil
	}
	return f.saved, nil
}

func rplResult() *model.PredictResult {
	return &model.PredictResult{
		Response: model.PredictionResponse{
			PredictedClass: 1,
			Confidence:     0.842,
			Probabilities:  map[string]float64{"0": 0.05, "1": 0.84, "2": 0.11},
			Model:          "random_forest",
		},
		Raw: []byte(`{}`),
	}
}

func TestPredictRecordsHistory(t *testing.T) {
	repo := &fakePredictionRepo{}
	svc := NewPredictionService(&fakePredictorClient{result: rplResult()}, repo)
	fixed := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	req := model.PredictionRequest{Features: make(model.FeatureVector, model.FeatureCount), ReturnProba: true}
	res, err := svc.Predict(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Response.PredictedClass)

	require.Len(t, repo.saved, 1)
	rec := repo.saved[0]
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 1, rec.PredictedClass)
	assert.Equal(t, "random_forest", rec.Model)
	assert.Equal(t, fixed, rec.CreatedAt)
	assert.True(t, svc.HistoryEnabled())
}

func TestPredictIgnoresHistoryFailure(t *testing.T) {
	repo := &fakePredictionRepo{insertErr: errors.New("db down")}
	svc := NewPredictionService(&fakePredictorClient{result: rplResult()}, repo)

	_, err := svc.Predict(context.Background(), model.PredictionRequest{Features: make(model.FeatureVector, model.FeatureCount)})
	assert.NoError(t, err)
}

func TestPredictPassesErrorsThrough(t *testing.T) {
	repo := &fakePredictionRepo{}
	want := model.NewPredictError(model.KindNetworkFailure, "failed to send request to predictor", errors.New("refused"))
	svc := NewPredictionService(&fakePredictorClient{err: want}, repo)

	_, err := svc.Predict(context.Background(), model.PredictionRequest{})
	assert.ErrorIs(t, err, model.ErrNetworkFailure)
	assert.Empty(t, repo.saved)
}

func TestListPredictionsDisabled(t *testing.T) {
	svc := NewPredictionService(&fakePredictorClient{}, nil)
	assert.False(t, svc.HistoryEnabled())
	_, err := svc.ListPredictions(context.Background(), 10)
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}

func TestFeatureOrderMatchesSchema(t *testing.T) {
	svc := NewPredictionService(&fakePredictorClient{order: model.FeatureNames()}, nil)
	res, err := svc.FeatureOrder(context.Background())
	require.NoError(t, err)
	assert.True(t, res.MatchesSchema)

	svc = NewPredictionService(&fakePredictorClient{order: []string{"GA", "PCOS"}}, nil)
	res, err = svc.FeatureOrder(context.Background())
	require.NoError(t, err)
	assert.False(t, res.MatchesSchema)
}
