package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ivf-predictor/webclient/internal/config"
	"github.com/ivf-predictor/webclient/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *PredictorClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewPredictorClient(config.PredictorConfig{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestPredictSendsContract(t *testing.T) {
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		data, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(data, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"random_forest","predicted_class":1,"confidence":0.842,"probabilities":{"0":0.05,"1":0.84,"2":0.11}}`))
	})

	features := model.FeatureVector{1, 2, 3, 4, 5, 6, 7, 8, math.NaN()}
	res, err := c.Predict(context.Background(), model.PredictionRequest{Features: features, ReturnProba: true})
	require.NoError(t, err)

	assert.Equal(t, []any{1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, nil}, gotBody["features"])
	assert.Equal(t, true, gotBody["return_proba"])
	assert.Equal(t, 1, res.Response.PredictedClass)
	assert.Equal(t, 0.842, res.Response.Confidence)
	assert.Equal(t, "random_forest", res.Response.Model)
	assert.Contains(t, string(res.Raw), `"predicted_class":1`)
}

func TestPredictClassifiesFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "server-error", status: http.StatusInternalServerError, body: `{"detail":"Model not loaded"}`, want: model.ErrNetworkFailure},
		{name: "bad-request", status: http.StatusBadRequest, body: `{"detail":"Model expects 9 features, but got 8"}`, want: model.ErrNetworkFailure},
		{name: "not-json", status: http.StatusOK, body: `<html>oops</html>`, want: model.ErrInvalidResponseShape},
		{name: "missing-class", status: http.StatusOK, body: `{"confidence":0.5}`, want: model.ErrInvalidResponseShape},
		{name: "fractional-class", status: http.StatusOK, body: `{"predicted_class":1.5,"confidence":0.5}`, want: model.ErrInvalidResponseShape},
		{name: "missing-confidence", status: http.StatusOK, body: `{"predicted_class":0}`, want: model.ErrInvalidResponseShape},
		{name: "confidence-out-of-range", status: http.StatusOK, body: `{"predicted_class":0,"confidence":1.5}`, want: model.ErrInvalidResponseShape},
		{name: "probability-out-of-range", status: http.StatusOK, body: `{"predicted_class":0,"confidence":0.5,"probabilities":{"0":-0.1}}`, want: model.ErrInvalidResponseShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := c.Predict(context.Background(), model.PredictionRequest{Features: make(model.FeatureVector, model.FeatureCount)})
			if !errors.Is(err, tt.want) {
				t.Fatalf("Predict() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPredictUnknownClassIsNotAShapeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predicted_class":5,"confidence":0.9}`))
	})
	res, err := c.Predict(context.Background(), model.PredictionRequest{Features: make(model.FeatureVector, model.FeatureCount)})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Response.PredictedClass)
	assert.Nil(t, res.Response.Probabilities)
}

func TestPredictAcceptsIntegralFloatClass(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predicted_class":1.0,"confidence":0.8}`))
	})
	res, err := c.Predict(context.Background(), model.PredictionRequest{Features: make(model.FeatureVector, model.FeatureCount)})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Response.PredictedClass)

	outcome, err := model.ParseOutcome(res.Response.PredictedClass)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeRPL, outcome)
}

func TestPredictNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewPredictorClient(config.PredictorConfig{BaseURL: url, Timeout: time.Second})
	_, err := c.Predict(context.Background(), model.PredictionRequest{Features: make(model.FeatureVector, model.FeatureCount)})
	assert.ErrorIs(t, err, model.ErrNetworkFailure)
}

func TestFeatureOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feature_order", r.URL.Path)
		_, _ = w.Write([]byte(`{"feature_order":["adenomyosis","endometriosis"]}`))
	})
	order, err := c.FeatureOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"adenomyosis", "endometriosis"}, order)
}

func TestFeatureOrderNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"feature_order.json not found"}`, http.StatusNotFound)
	})
	_, err := c.FeatureOrder(context.Background())
	assert.ErrorIs(t, err, ErrFeatureOrderUnavailable)
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","model_loaded":true}`))
	})
	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)
	assert.True(t, h.ModelLoaded)
}

func TestNewPredictorClientDefaultsBaseURL(t *testing.T) {
	c := NewPredictorClient(config.PredictorConfig{})
	assert.Equal(t, config.DefaultPredictorURL, c.BaseURL())
}
