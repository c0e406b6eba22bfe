package web

import (
	"net/url"
	"strings"

	"github.com/ivf-predictor/webclient/internal/model"
)

// FormInput exposes submitted form values as the page's input surface.
type FormInput struct {
	values url.Values
}

func NewFormInput(values url.Values) FormInput {
	return FormInput{values: values}
}

func (f FormInput) Value(id string) string {
	return f.values.Get(id)
}

// Checked follows checkbox semantics: an absent field is unchecked.
func (f FormInput) Checked(id string) bool {
	if _, ok := f.values[id]; !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(f.values.Get(id))) {
	case "false", "off", "0":
		return false
	}
	return true
}

// Echo returns the raw field values so the form can be redrawn as submitted.
func (f FormInput) Echo() map[string]string {
	out := make(map[string]string, model.FeatureCount)
	for _, feat := range model.FeatureSchema {
		out[feat.ID] = f.Value(feat.ID)
	}
	return out
}
