// 예측 서비스와 HTTP 통신하는 클라이언트 정의
//
// 환경변수:
//   - PREDICTOR_URL: 예측 서비스 URL (기본값: http://127.0.0.1:8000)
//   - PREDICTOR_TIMEOUT: 요청 타임아웃 (기본값: 30s)
//
// 엔드포인트:
//   - POST /predict: {"features": [...9], "return_proba": bool}
//   - GET /health
//   - GET /feature_order

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/ivf-predictor/webclient/internal/config"
	"github.com/ivf-predictor/webclient/internal/model"
)

const maxResponseBytes = 1 << 20

// ErrFeatureOrderUnavailable is returned when the service has no feature order artifact.
var ErrFeatureOrderUnavailable = errors.New("feature order not available")

// PredictorClient 구조체 정의
type PredictorClient struct {
	baseURL    string
	httpClient *http.Client
}

// predictionWire mirrors the response with pointers so missing fields can be told apart from zero.
type predictionWire struct {
	PredictedClass *float64           `json:"predicted_class"`
	Confidence     *float64           `json:"confidence"`
	Probabilities  map[string]float64 `json:"probabilities"`
	Model          string             `json:"model"`
	FeatureOrder   []string           `json:"feature_order"`
}

type featureOrderWire struct {
	FeatureOrder []string `json:"feature_order"`
}

// PredictorClient 객체 생성
func NewPredictorClient(cfg config.PredictorConfig) *PredictorClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultPredictorURL
	}

	return &PredictorClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *PredictorClient) BaseURL() string {
	return c.baseURL
}

// POST /predict 예측 요청하고 응답 반환 (동기)
func (c *PredictorClient) Predict(ctx context.Context, req model.PredictionRequest) (*model.PredictResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prediction request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	body, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	resp, err := decodePrediction(body)
	if err != nil {
		return nil, err
	}
	return &model.PredictResult{Response: *resp, Raw: body}, nil
}

// GET /health 서비스 상태 조회
func (c *PredictorClient) Health(ctx context.Context) (*model.ServiceHealth, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var health model.ServiceHealth
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, model.NewPredictError(model.KindInvalidResponseShape, "failed to parse health response", err)
	}
	return &health, nil
}

// GET /feature_order 서비스 모델의 피처 순서 조회
func (c *PredictorClient) FeatureOrder(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/feature_order", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(httpReq)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return nil, ErrFeatureOrderUnavailable
		}
		return nil, err
	}

	var wire featureOrderWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, model.NewPredictError(model.KindInvalidResponseShape, "failed to parse feature order response", err)
	}
	return wire.FeatureOrder, nil
}

// StatusError is a non-2xx response from the service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("predictor returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("predictor returned status %d: %s", e.StatusCode, e.Body)
}

// do sends the request and returns the body of a 2xx response.
// Transport failures and non-2xx statuses come back as NetworkFailure.
func (c *PredictorClient) do(httpReq *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, model.NewPredictError(model.KindNetworkFailure, "failed to send request to predictor", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, model.NewPredictError(model.KindNetworkFailure, "failed to read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		se := &StatusError{StatusCode: resp.StatusCode, Body: excerpt(body)}
		return nil, model.NewPredictError(model.KindNetworkFailure, "unexpected status", se)
	}
	return body, nil
}

func decodePrediction(body []byte) (*model.PredictionResponse, error) {
	var wire predictionWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, model.NewPredictError(model.KindInvalidResponseShape, "failed to parse response", err)
	}
	if wire.PredictedClass == nil {
		return nil, model.NewPredictError(model.KindInvalidResponseShape, "missing predicted_class", nil)
	}
	class, ok := classID(*wire.PredictedClass)
	if !ok {
		return nil, model.NewPredictError(model.KindInvalidResponseShape, fmt.Sprintf("predicted_class %v is not an integer", *wire.PredictedClass), nil)
	}
	if wire.Confidence == nil {
		return nil, model.NewPredictError(model.KindInvalidResponseShape, "missing confidence", nil)
	}
	if !isProbability(*wire.Confidence) {
		return nil, model.NewPredictError(model.KindInvalidResponseShape, fmt.Sprintf("confidence %v outside [0,1]", *wire.Confidence), nil)
	}
	for class, p := range wire.Probabilities {
		if !isProbability(p) {
			return nil, model.NewPredictError(model.KindInvalidResponseShape, fmt.Sprintf("probability for class %q is %v, outside [0,1]", class, p), nil)
		}
	}

	return &model.PredictionResponse{
		PredictedClass: class,
		Confidence:     *wire.Confidence,
		Probabilities:  wire.Probabilities,
		Model:          wire.Model,
		FeatureOrder:   wire.FeatureOrder,
	}, nil
}

// classID accepts integral JSON numbers such as 1 or 1.0.
func classID(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

func isProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
