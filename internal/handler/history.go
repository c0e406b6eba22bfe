package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ivf-predictor/webclient/internal/model"
	"github.com/ivf-predictor/webclient/internal/service"
)

type historyLister interface {
	ListPredictions(ctx context.Context, limit int) ([]model.PredictionRecord, error)
}

type HistoryHandler struct {
	svc          historyLister
	defaultLimit int
}

func NewHistoryHandler(svc historyLister, defaultLimit int) *HistoryHandler {
	return &HistoryHandler{svc: svc, defaultLimit: defaultLimit}
}

// ListPredictions godoc
// @Summary List recent predictions
// @Tags predictions
// @Produce json
// @Param limit query int false "Maximum rows (1-500)"
// @Success 200 {object} model.PredictionListResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/predictions [get]
func (h *HistoryHandler) ListPredictions(c *gin.Context) {
	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
			return
		}
		limit = n
	}

	list, err := h.svc.ListPredictions(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.PredictionListResponse{Status: "success", Data: list})
}
