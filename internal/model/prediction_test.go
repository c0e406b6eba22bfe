package model

import (
	"encoding/json"
	"testing"
)

func TestProbabilityVector(t *testing.T) {
	tests := []struct {
		name string
		resp PredictionResponse
		want [OutcomeCount]float64
	}{
		{
			name: "all-present",
			resp: PredictionResponse{Probabilities: map[string]float64{"0": 0.05, "1": 0.84, "2": 0.11}},
			want: [OutcomeCount]float64{0.05, 0.84, 0.11},
		},
		{
			name: "partial",
			resp: PredictionResponse{Probabilities: map[string]float64{"1": 1.0}},
			want: [OutcomeCount]float64{0, 1, 0},
		},
		{
			name: "absent",
			resp: PredictionResponse{},
			want: [OutcomeCount]float64{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resp.ProbabilityVector(); got != tt.want {
				t.Fatalf("ProbabilityVector() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPredictAPIRequestDefaultsReturnProba(t *testing.T) {
	var req PredictAPIRequest
	if err := json.Unmarshal([]byte(`{"features":[1,2,3,4,5,6,7,8,9]}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !req.ToPredictionRequest().ReturnProba {
		t.Fatalf("expected return_proba to default to true")
	}
}

func TestNewProbabilityChart(t *testing.T) {
	cfg := NewProbabilityChart([OutcomeCount]float64{0.05, 0.84, 0.11})
	if cfg.Labels[0] != "RIF (0)" || cfg.Labels[1] != "RPL (1)" || cfg.Labels[2] != "Both (2)" {
		t.Fatalf("unexpected labels %v", cfg.Labels)
	}
	if cfg.YMin != 0 || cfg.YMax != 1 {
		t.Fatalf("expected y range [0,1], got [%v,%v]", cfg.YMin, cfg.YMax)
	}
}
