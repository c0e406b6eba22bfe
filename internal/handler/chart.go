package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ivf-predictor/webclient/internal/chart"
)

type chartStore interface {
	Get(id string) ([]byte, bool)
}

type ChartHandler struct {
	charts chartStore
}

func NewChartHandler(charts chartStore) *ChartHandler {
	return &ChartHandler{charts: charts}
}

// GetChart godoc
// @Summary Probability chart image
// @Tags charts
// @Produce image/svg+xml
// @Param id path string true "Chart handle id"
// @Success 200 {file} file
// @Failure 404 {object} model.ErrorResponse
// @Router /charts/{id} [get]
func (h *ChartHandler) GetChart(c *gin.Context) {
	img, ok := h.charts.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, chart.ContentType, img)
}
