// Package view drives one prediction page: it reads the form, calls the
// prediction service and fills the raw JSON, chart and diagnosis regions.
package view

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/ivf-predictor/webclient/internal/model"
	"github.com/rs/zerolog/log"
)

var (
	// ErrStale is returned when a newer submission started before this one resolved.
	ErrStale = errors.New("superseded by a newer submission")
	// ErrClosed is returned by submissions that resolve after Close.
	ErrClosed = errors.New("controller closed")
)

// Predictor is the outbound prediction call.
type Predictor interface {
	Predict(ctx context.Context, req model.PredictionRequest) (*model.PredictResult, error)
}

// ChartHandle is a live rendered chart.
type ChartHandle interface {
	ID() string
	Destroy() error
}

// Charter constructs charts.
type Charter interface {
	Create(ctx context.Context, cfg model.ChartConfig) (ChartHandle, error)
}

// Display is the set of output regions of the page.
type Display interface {
	ShowRaw(text string)
	SetResultsVisible(visible bool)
	// ShowChart replaces the chart region; nil clears it.
	ShowChart(h ChartHandle)
	ShowDiagnosis(d model.Diagnosis)
	HideDiagnosis()
	ShowError(err *model.PredictError)
	ClearError()
}

// Submission is what a resolved submission rendered.
type Submission struct {
	Seq           uint64
	Request       model.PredictionRequest
	Response      *model.PredictionResponse
	Probabilities [model.OutcomeCount]float64
	Chart         model.ChartConfig
	ChartID       string
	Diagnosis     *model.Diagnosis
}

// Controller owns the display and the single live chart handle of one page.
type Controller struct {
	predictor Predictor
	charts    Charter
	display   Display

	mu       sync.Mutex
	seq      uint64
	inFlight int
	chart    ChartHandle
	closed   bool
}

// NewController returns a controller drawing onto display.
func NewController(predictor Predictor, charts Charter, display Display) *Controller {
	return &Controller{predictor: predictor, charts: charts, display: display}
}

// Submit reads the input surface and submits it.
func (c *Controller) Submit(ctx context.Context, in InputSurface) (*Submission, error) {
	return c.SubmitRequest(ctx, ReadRequest(in))
}

// SubmitRequest sends req and renders the outcome. Failures are shown on the display
// and returned; only the newest submission touches the display.
func (c *Controller) SubmitRequest(ctx context.Context, req model.PredictionRequest) (*Submission, error) {
	token, err := c.begin()
	if err != nil {
		return nil, err
	}
	defer c.end()

	res, err := c.predictor.Predict(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}
	if token != c.seq {
		log.Debug().Uint64("seq", token).Uint64("latest", c.seq).Msg("Dropping stale prediction response")
		return nil, ErrStale
	}

	sub := &Submission{Seq: token, Request: req}
	if err != nil {
		perr := classify(err)
		c.fail(perr)
		return sub, perr
	}
	return sub, c.render(ctx, sub, res)
}

// Busy reports whether a submission is awaiting the service.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight > 0
}

// ChartID returns the id of the live chart handle, or "".
func (c *Controller) ChartID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.chart == nil {
		return ""
	}
	return c.chart.ID()
}

// Close destroys the live chart. Later submissions fail with ErrClosed.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return c.destroyChart()
}

func (c *Controller) begin() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, ErrClosed
	}
	c.seq++
	c.inFlight++
	return c.seq, nil
}

func (c *Controller) end() {
	c.mu.Lock()
	c.inFlight--
	c.mu.Unlock()
}

// render must be called with c.mu held.
func (c *Controller) render(ctx context.Context, sub *Submission, res *model.PredictResult) error {
	resp := res.Response
	sub.Response = &resp
	sub.Probabilities = resp.ProbabilityVector()
	sub.Chart = model.NewProbabilityChart(sub.Probabilities)

	c.display.ClearError()
	c.display.ShowRaw(prettyJSON(res.Raw, resp))
	c.display.SetResultsVisible(true)

	h, err := c.replaceChart(ctx, sub.Chart)
	if err != nil {
		perr := model.NewPredictError(model.KindRenderFailure, "failed to render probability chart", err)
		c.display.ShowChart(nil)
		c.display.HideDiagnosis()
		c.display.ShowError(perr)
		return perr
	}
	sub.ChartID = h.ID()
	c.display.ShowChart(h)

	outcome, err := model.ParseOutcome(resp.PredictedClass)
	if err != nil {
		c.display.HideDiagnosis()
		c.display.ShowError(classify(err))
		return err
	}

	d := model.NewDiagnosis(outcome, resp.Confidence)
	sub.Diagnosis = &d
	c.display.ShowDiagnosis(d)
	return nil
}

// fail must be called with c.mu held.
func (c *Controller) fail(perr *model.PredictError) {
	if err := c.destroyChart(); err != nil {
		log.Warn().Err(err).Msg("Failed to destroy chart")
	}
	c.display.ShowRaw("")
	c.display.SetResultsVisible(false)
	c.display.ShowChart(nil)
	c.display.HideDiagnosis()
	c.display.ShowError(perr)
}

// replaceChart destroys the live handle before creating its replacement.
func (c *Controller) replaceChart(ctx context.Context, cfg model.ChartConfig) (ChartHandle, error) {
	if err := c.destroyChart(); err != nil {
		log.Warn().Err(err).Msg("Failed to destroy previous chart")
	}
	h, err := c.charts.Create(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.chart = h
	return h, nil
}

func (c *Controller) destroyChart() error {
	if c.chart == nil {
		return nil
	}
	h := c.chart
	c.chart = nil
	return h.Destroy()
}

// classify maps any error onto the failure taxonomy; unclassified errors are network failures.
func classify(err error) *model.PredictError {
	var perr *model.PredictError
	if errors.As(err, &perr) {
		return perr
	}
	return model.NewPredictError(model.KindNetworkFailure, "prediction request failed", err)
}

func prettyJSON(raw []byte, resp model.PredictionResponse) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err == nil {
		return buf.String()
	}
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return ""
	}
	return string(out)
}
