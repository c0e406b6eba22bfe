package view

import (
	"math"
	"testing"

	"github.com/ivf-predictor/webclient/internal/model"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "1.5", want: 1.5},
		{in: "  42", want: 42},
		{in: "-0.25", want: -0.25},
		{in: "+3", want: 3},
		{in: ".5", want: 0.5},
		{in: "5.", want: 5},
		{in: "1e3", want: 1000},
		{in: "1e", want: 1},
		{in: "12abc", want: 12},
		{in: "3.2.1", want: 3.2},
		{in: "Infinity", want: math.Inf(1)},
		{in: "-Infinity", want: math.Inf(-1)},
	}
	for _, tt := range tests {
		if got := ParseFloat(tt.in); got != tt.want {
			t.Fatalf("ParseFloat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "   ", "abc", "-", ".", "e5", "NaN"} {
		if got := ParseFloat(in); !math.IsNaN(got) {
			t.Fatalf("ParseFloat(%q) = %v, want NaN", in, got)
		}
	}
}

func TestReadRequestKeepsSchemaOrder(t *testing.T) {
	// Populate in reverse so map insertion order cannot line up with the schema.
	values := map[string]string{}
	for i := len(model.FeatureSchema) - 1; i >= 0; i-- {
		values[model.FeatureSchema[i].ID] = string(rune('1' + i))
	}
	in := MapInput{Values: values, Flags: map[string]bool{model.ReturnProbaField: true}}

	req := ReadRequest(in)
	if len(req.Features) != model.FeatureCount {
		t.Fatalf("expected %d features, got %d", model.FeatureCount, len(req.Features))
	}
	for i, f := range req.Features {
		if f != float64(i+1) {
			t.Fatalf("feature %d (%s) = %v, want %v", i, model.FeatureSchema[i].Name, f, i+1)
		}
	}
	if !req.ReturnProba {
		t.Fatalf("expected return_proba true")
	}
}

func TestReadRequestMissingFieldsAreNaN(t *testing.T) {
	req := ReadRequest(MapInput{Values: map[string]string{"f_ga": "36"}})
	if req.Features[3] != 36 {
		t.Fatalf("GA = %v, want 36", req.Features[3])
	}
	if !math.IsNaN(req.Features[0]) || !math.IsNaN(req.Features[8]) {
		t.Fatalf("expected missing fields to be NaN, got %v", req.Features)
	}
	if req.ReturnProba {
		t.Fatalf("expected return_proba false when the checkbox is absent")
	}
}
