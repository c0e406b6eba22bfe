// Package chart renders probability bar charts and keeps each rendered image
// alive until its handle is destroyed.
package chart

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/ivf-predictor/webclient/internal/model"
	"github.com/ivf-predictor/webclient/internal/view"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const ContentType = "image/svg+xml"

const (
	defaultWidth  = 480
	defaultHeight = 320
)

// Renderer renders charts to SVG and stores them by handle id.
type Renderer struct {
	width  int
	height int

	mu     sync.RWMutex
	charts map[string][]byte
}

func NewRenderer() *Renderer {
	return &Renderer{
		width:  defaultWidth,
		height: defaultHeight,
		charts: make(map[string][]byte),
	}
}

// Create renders cfg and returns a handle owning the stored image.
func (r *Renderer) Create(ctx context.Context, cfg model.ChartConfig) (view.ChartHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := r.render(cfg)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	r.mu.Lock()
	r.charts[id] = img
	r.mu.Unlock()

	return &handle{id: id, renderer: r}, nil
}

// Get returns the image of a live handle.
func (r *Renderer) Get(id string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.charts[id]
	return img, ok
}

// Len returns the number of live handles.
func (r *Renderer) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.charts)
}

func (r *Renderer) release(id string) {
	r.mu.Lock()
	delete(r.charts, id)
	r.mu.Unlock()
}

func (r *Renderer) render(cfg model.ChartConfig) ([]byte, error) {
	if len(cfg.Labels) != len(cfg.Data) {
		return nil, fmt.Errorf("chart has %d labels for %d values", len(cfg.Labels), len(cfg.Data))
	}

	bars := make([]gochart.Value, 0, len(cfg.Data))
	for i, v := range cfg.Data {
		style := gochart.Style{StrokeWidth: 1}
		if i < len(cfg.Colors) {
			c := drawing.ColorFromHex(strings.TrimPrefix(cfg.Colors[i], "#"))
			style.FillColor = c
			style.StrokeColor = c
		}
		bars = append(bars, gochart.Value{Label: cfg.Labels[i], Value: v, Style: style})
	}

	graph := gochart.BarChart{
		Title:      cfg.DatasetLabel,
		Width:      r.width,
		Height:     r.height,
		BarWidth:   80,
		BarSpacing: 40,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: cfg.YMin, Max: cfg.YMax},
			Ticks: yTicks(cfg.YMin, cfg.YMax),
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func yTicks(min, max float64) []gochart.Tick {
	const steps = 5
	ticks := make([]gochart.Tick, 0, steps+1)
	for i := 0; i <= steps; i++ {
		v := min + (max-min)*float64(i)/steps
		ticks = append(ticks, gochart.Tick{Value: v, Label: fmt.Sprintf("%.1f", v)})
	}
	return ticks
}

type handle struct {
	id       string
	renderer *Renderer
	once     sync.Once
}

func (h *handle) ID() string { return h.id }

// Destroy releases the stored image. Calling it twice is a no-op.
func (h *handle) Destroy() error {
	h.once.Do(func() { h.renderer.release(h.id) })
	return nil
}
