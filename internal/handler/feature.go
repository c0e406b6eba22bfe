package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ivf-predictor/webclient/internal/client"
	"github.com/ivf-predictor/webclient/internal/model"
)

type featureOrderSource interface {
	FeatureOrder(ctx context.Context) (*model.FeatureOrderResponse, error)
}

type FeatureHandler struct {
	svc featureOrderSource
}

func NewFeatureHandler(svc featureOrderSource) *FeatureHandler {
	return &FeatureHandler{svc: svc}
}

// GetFeatureOrder godoc
// @Summary Compare the service's feature order with the form schema
// @Tags features
// @Produce json
// @Success 200 {object} model.FeatureOrderResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/v1/feature-order [get]
func (h *FeatureHandler) GetFeatureOrder(c *gin.Context) {
	res, err := h.svc.FeatureOrder(c.Request.Context())
	if err != nil {
		if errors.Is(err, client.ErrFeatureOrderUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
