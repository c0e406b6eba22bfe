package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ivf-predictor/webclient/internal/model"
)

type healthChecker interface {
	Health(ctx context.Context) (*model.ServiceHealth, error)
}

type HealthHandler struct {
	svc healthChecker
}

func NewHealthHandler(svc healthChecker) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Ping godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} model.PingResponse
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// Health godoc
// @Summary Readiness including the prediction service
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Failure 503 {object} model.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	upstream, err := h.svc.Health(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, model.HealthResponse{
			Status:    "degraded",
			Predictor: "unreachable",
			Error:     err.Error(),
		})
		return
	}

	res := model.HealthResponse{Status: "ok", Predictor: "ok", Upstream: upstream}
	if !upstream.ModelLoaded {
		res.Status = "degraded"
		res.Predictor = "model_not_loaded"
		c.JSON(http.StatusServiceUnavailable, res)
		return
	}
	c.JSON(http.StatusOK, res)
}
