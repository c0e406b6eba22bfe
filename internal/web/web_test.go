package web

import (
	"bytes"
	"io/fs"
	"net/url"
	"testing"

	"github.com/ivf-predictor/webclient/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandle string

func (h stubHandle) ID() string     { return string(h) }
func (h stubHandle) Destroy() error { return nil }

func TestFormInputChecked(t *testing.T) {
	in := NewFormInput(url.Values{
		"returnProba": {"on"},
		"off":         {"off"},
		"f_ga":        {"36.5"},
	})
	assert.True(t, in.Checked("returnProba"))
	assert.False(t, in.Checked("off"))
	assert.False(t, in.Checked("missing"))
	assert.Equal(t, "36.5", in.Value("f_ga"))
	assert.Equal(t, "36.5", in.Echo()["f_ga"])
}

func TestViewSnapshotIsACopy(t *testing.T) {
	v := NewView()
	v.ShowRaw(`{"predicted_class": 1}`)
	v.SetResultsVisible(true)
	v.ShowChart(stubHandle("c-1"))
	v.ShowDiagnosis(model.NewDiagnosis(model.OutcomeRPL, 0.842))

	s := v.Snapshot()
	s.Diagnosis.Label = "changed"

	again := v.Snapshot()
	assert.Equal(t, "RPL (Recurrent Pregnancy Loss)", again.Diagnosis.Label)
	assert.Equal(t, "c-1", again.ChartID)

	v.ShowChart(nil)
	v.HideDiagnosis()
	v.ShowError(model.NewPredictError(model.KindUnknownClass, "predicted_class 9 is not one of 0, 1, 2", nil))
	s = v.Snapshot()
	assert.Empty(t, s.ChartID)
	assert.Nil(t, s.Diagnosis)
	require.NotNil(t, s.Error)
	assert.Equal(t, model.KindUnknownClass, s.Error.Kind)

	v.ClearError()
	assert.Nil(t, v.Snapshot().Error)
}

func TestRenderIndex(t *testing.T) {
	tmpl, err := LoadTemplates()
	require.NoError(t, err)

	v := NewView()
	v.RememberInput(NewFormInput(url.Values{"f_adenomyosis": {"1"}, "returnProba": {"on"}}))
	v.ShowRaw("{\n  \"predicted_class\": 1\n}")
	v.SetResultsVisible(true)
	v.ShowChart(stubHandle("abc"))
	v.ShowDiagnosis(model.NewDiagnosis(model.OutcomeRPL, 0.842))

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, "index.html", NewPage(v.Snapshot(), true)))
	out := buf.String()

	assert.Contains(t, out, `src="/charts/abc"`)
	assert.Contains(t, out, "RPL (Recurrent Pregnancy Loss)")
	assert.Contains(t, out, "84.2%")
	assert.Contains(t, out, `id="predictBtn" disabled`)
	assert.Contains(t, out, `name="f_adenomyosis" value="1"`)
	assert.NotContains(t, out, `id="errorPanel"`)
}

func TestRenderIndexError(t *testing.T) {
	tmpl, err := LoadTemplates()
	require.NoError(t, err)

	v := NewView()
	v.ShowError(model.NewPredictError(model.KindNetworkFailure, "failed to send request to predictor", nil))

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, "index.html", NewPage(v.Snapshot(), false)))
	out := buf.String()
	assert.Contains(t, out, `data-kind="NetworkFailure"`)
	assert.NotContains(t, out, `id="resultsSection"`)
	assert.NotContains(t, out, `id="diagnosisSection"`)
}

func TestStaticFS(t *testing.T) {
	_, err := fs.Stat(StaticFS(), "style.css")
	assert.NoError(t, err)
}
