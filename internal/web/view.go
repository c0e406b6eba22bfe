package web

import (
	"sync"

	"github.com/ivf-predictor/webclient/internal/model"
	"github.com/ivf-predictor/webclient/internal/view"
)

// ErrorState is the content of the error region.
type ErrorState struct {
	Kind    model.ErrorKind
	Message string
}

// PageState is a point-in-time copy of the output regions.
type PageState struct {
	Raw            string
	ResultsVisible bool
	ChartID        string
	Diagnosis      *model.Diagnosis
	Error          *ErrorState
	Values         map[string]string
	ReturnProba    bool
}

// View holds the output regions of one session's page.
type View struct {
	mu    sync.RWMutex
	state PageState
}

var _ view.Display = (*View)(nil)

func NewView() *View {
	return &View{state: PageState{ReturnProba: true}}
}

func (v *View) ShowRaw(text string) {
	v.mu.Lock()
	v.state.Raw = text
	v.mu.Unlock()
}

func (v *View) SetResultsVisible(visible bool) {
	v.mu.Lock()
	v.state.ResultsVisible = visible
	v.mu.Unlock()
}

func (v *View) ShowChart(h view.ChartHandle) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if h == nil {
		v.state.ChartID = ""
		return
	}
	v.state.ChartID = h.ID()
}

func (v *View) ShowDiagnosis(d model.Diagnosis) {
	v.mu.Lock()
	v.state.Diagnosis = &d
	v.mu.Unlock()
}

func (v *View) HideDiagnosis() {
	v.mu.Lock()
	v.state.Diagnosis = nil
	v.mu.Unlock()
}

func (v *View) ShowError(err *model.PredictError) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err == nil {
		v.state.Error = nil
		return
	}
	msg := err.Message
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	v.state.Error = &ErrorState{Kind: err.Kind, Message: msg}
}

func (v *View) ClearError() {
	v.mu.Lock()
	v.state.Error = nil
	v.mu.Unlock()
}

// RememberInput keeps the submitted values for redrawing the form.
func (v *View) RememberInput(in FormInput) {
	v.mu.Lock()
	v.state.Values = in.Echo()
	v.state.ReturnProba = in.Checked(model.ReturnProbaField)
	v.mu.Unlock()
}

func (v *View) Snapshot() PageState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	s := v.state
	if s.Diagnosis != nil {
		d := *s.Diagnosis
		s.Diagnosis = &d
	}
	if s.Error != nil {
		e := *s.Error
		s.Error = &e
	}
	if s.Values != nil {
		vals := make(map[string]string, len(s.Values))
		for k, val := range s.Values {
			vals[k] = val
		}
		s.Values = vals
	}
	return s
}
