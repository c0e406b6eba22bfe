package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ivf-predictor/webclient/internal/view"
	"github.com/ivf-predictor/webclient/internal/web"
	"github.com/rs/zerolog/log"
)

// PageHandler serves the form page and its submissions.
type PageHandler struct {
	templates *web.Templates
}

func NewPageHandler(templates *web.Templates) *PageHandler {
	return &PageHandler{templates: templates}
}

// Index renders the session's current page.
func (h *PageHandler) Index(c *gin.Context) {
	h.render(c, GetSession(c))
}

// Submit reads the posted form, runs the prediction and redraws the page.
// Prediction failures are part of the page, so the status is 200 either way.
func (h *PageHandler) Submit(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}

	sess := GetSession(c)
	in := web.NewFormInput(c.Request.PostForm)
	sess.View.RememberInput(in)

	if _, err := sess.Controller.Submit(c.Request.Context(), in); err != nil {
		switch {
		case errors.Is(err, view.ErrStale):
			log.Debug().Str("session_id", sess.ID).Msg("Form submission superseded")
		default:
			log.Warn().Err(err).Str("session_id", sess.ID).Msg("Form submission failed")
		}
	}
	h.render(c, sess)
}

func (h *PageHandler) render(c *gin.Context, sess *web.Session) {
	page := web.NewPage(sess.View.Snapshot(), sess.Controller.Busy())
	var buf bytes.Buffer
	if err := h.templates.Render(&buf, "index.html", page); err != nil {
		log.Error().Err(err).Msg("Template rendering failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "template rendering failed"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
