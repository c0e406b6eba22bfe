package view

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ivf-predictor/webclient/internal/model"
)

// InputSurface exposes the form fields by their stable identifiers.
type InputSurface interface {
	Value(id string) string
	Checked(id string) bool
}

// ReadRequest reads the feature fields in schema order and the return_proba flag.
// Fields are not validated; anything without a numeric prefix becomes NaN.
func ReadRequest(in InputSurface) model.PredictionRequest {
	features := make(model.FeatureVector, 0, model.FeatureCount)
	for _, f := range model.FeatureSchema {
		features = append(features, ParseFloat(in.Value(f.ID)))
	}
	return model.PredictionRequest{
		Features:    features,
		ReturnProba: in.Checked(model.ReturnProbaField),
	}
}

var floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseFloat parses the longest numeric prefix of s after leading whitespace,
// the way a browser form value is read. It returns NaN when there is none.
func ParseFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f\u00a0\ufeff")
	m := floatPrefix.FindString(s)
	if m == "" {
		return math.NaN()
	}
	if strings.HasSuffix(m, "Infinity") {
		if strings.HasPrefix(m, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// out of range literals still carry a sign and magnitude
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

// MapInput is an InputSurface over plain maps.
type MapInput struct {
	Values map[string]string
	Flags  map[string]bool
}

func (m MapInput) Value(id string) string { return m.Values[id] }
func (m MapInput) Checked(id string) bool { return m.Flags[id] }
