package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/ivf-predictor/webclient/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// FieldView is one feature input as drawn on the page.
type FieldView struct {
	ID    string
	Name  string
	Value string
}

// Page is the data the index template renders.
type Page struct {
	Fields []FieldView
	State  PageState
	Busy   bool
}

func NewPage(state PageState, busy bool) Page {
	fields := make([]FieldView, 0, model.FeatureCount)
	for _, f := range model.FeatureSchema {
		fields = append(fields, FieldView{ID: f.ID, Name: f.Name, Value: state.Values[f.ID]})
	}
	return Page{Fields: fields, State: state, Busy: busy}
}

// Templates renders the embedded page templates.
type Templates struct {
	tmpl *template.Template
}

func LoadTemplates() (*Templates, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Templates{tmpl: tmpl}, nil
}

// Render executes name into a buffer first so a template error never leaves a partial page.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := t.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// StaticFS returns the embedded static assets rooted at static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
