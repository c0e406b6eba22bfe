// 예측 서비스가 기대하는 입력 피처 스키마
// 순서가 곧 계약이므로 FeatureSchema의 순서를 바꾸면 서비스 쪽 모델과 어긋난다.

package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// FeatureCount is the length of every FeatureVector sent to the service.
const FeatureCount = 9

// ReturnProbaField is the form identifier of the return_proba checkbox.
const ReturnProbaField = "returnProba"

// Feature names one input of the vector and the form field it is read from.
type Feature struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FeatureSchema - 서비스 모델의 입력 순서
var FeatureSchema = [FeatureCount]Feature{
	{ID: "f_adenomyosis", Name: "adenomyosis"},
	{ID: "f_endometriosis", Name: "endometriosis"},
	{ID: "f_fibroids", Name: "fibroids"},
	{ID: "f_ga", Name: "GA"},
	{ID: "f_pcos", Name: "PCOS"},
	{ID: "f_th17", Name: "Th17"},
	{ID: "f_th17_ifn_pos", Name: "Th17/IFN-positive"},
	{ID: "f_th17_ifn_neg", Name: "Th17/IFN-negative"},
	{ID: "f_treg_ratio", Name: "Treg ratio"},
}

// FeatureNames returns the schema names in wire order.
func FeatureNames() []string {
	names := make([]string, 0, FeatureCount)
	for _, f := range FeatureSchema {
		names = append(names, f.Name)
	}
	return names
}

// FeatureVector is an ordered list of feature values.
// NaN marks a missing or unparseable input and is encoded as JSON null.
type FeatureVector []float64

func (v FeatureVector) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (v *FeatureVector) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*v = nil
		return nil
	}
	out := make(FeatureVector, len(raw))
	for i, f := range raw {
		if f == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *f
	}
	*v = out
	return nil
}

// HasMissing reports whether any value is NaN.
func (v FeatureVector) HasMissing() bool {
	for _, f := range v {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}
