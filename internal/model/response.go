package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message string `json:"message"`
}

// HealthResponse - GET /health
type HealthResponse struct {
	Status    string         `json:"status"`
	Predictor string         `json:"predictor"`
	Upstream  *ServiceHealth `json:"upstream,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// PredictAPIRequest - POST /api/v1/predict
// return_proba가 생략되면 true로 간주한다.
type PredictAPIRequest struct {
	Features    FeatureVector `json:"features" binding:"required,len=9"`
	ReturnProba *bool         `json:"return_proba"`
}

func (r PredictAPIRequest) ToPredictionRequest() PredictionRequest {
	returnProba := true
	if r.ReturnProba != nil {
		returnProba = *r.ReturnProba
	}
	return PredictionRequest{Features: r.Features, ReturnProba: returnProba}
}

// PredictAPIResponse - POST /api/v1/predict 응답
type PredictAPIResponse struct {
	Status        string                `json:"status"`
	RequestID     string                `json:"request_id"`
	Response      *PredictionResponse   `json:"response,omitempty"`
	Probabilities [OutcomeCount]float64 `json:"probabilities"`
	Diagnosis     *Diagnosis            `json:"diagnosis,omitempty"`
	Chart         *ChartConfig          `json:"chart,omitempty"`
	ChartURL      string                `json:"chart_url,omitempty"`
	ErrorKind     ErrorKind             `json:"error_kind,omitempty"`
	Error         string                `json:"error,omitempty"`
}

// FeatureOrderResponse - GET /api/v1/feature-order
type FeatureOrderResponse struct {
	FeatureOrder  []string `json:"feature_order"`
	Schema        []string `json:"schema"`
	MatchesSchema bool     `json:"matches_schema"`
}

// PredictionListResponse - GET /api/v1/predictions
type PredictionListResponse struct {
	Status string             `json:"status"`
	Data   []PredictionRecord `json:"data"`
}
