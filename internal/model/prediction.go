package model

import "strconv"

// PredictionRequest - POST /predict 요청 바디
type PredictionRequest struct {
	Features    FeatureVector `json:"features"`
	ReturnProba bool          `json:"return_proba"`
}

// PredictionResponse - POST /predict 응답
// Probabilities는 return_proba 요청 시에만 채워질 수 있다.
type PredictionResponse struct {
	PredictedClass int                `json:"predicted_class"`
	Confidence     float64            `json:"confidence"`
	Probabilities  map[string]float64 `json:"probabilities,omitempty"`
	Model          string             `json:"model,omitempty"`
	FeatureOrder   []string           `json:"feature_order,omitempty"`
}

// ProbabilityVector returns the per-class probabilities in class order.
// Missing entries, or a missing map, read as zero.
func (r PredictionResponse) ProbabilityVector() [OutcomeCount]float64 {
	var out [OutcomeCount]float64
	if r.Probabilities == nil {
		return out
	}
	for i := range out {
		out[i] = r.Probabilities[strconv.Itoa(i)]
	}
	return out
}

// PredictResult is a decoded response together with the body it was decoded from.
type PredictResult struct {
	Response PredictionResponse
	Raw      []byte
}

// ServiceHealth - GET /health 응답
type ServiceHealth struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}
