package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ivf-predictor/webclient/internal/model"
	"github.com/ivf-predictor/webclient/internal/view"
)

type PredictHandler struct{}

func NewPredictHandler() *PredictHandler {
	return &PredictHandler{}
}

// Predict godoc
// @Summary Run a prediction for the caller's session
// @Description Sends the nine features to the prediction service and returns the rendered outcome. The chart stays available at chart_url until the session's next prediction.
// @Tags predictions
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id; a new session is created when absent"
// @Param request body model.PredictAPIRequest true "Feature vector in schema order"
// @Success 200 {object} model.PredictAPIResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.PredictAPIResponse
// @Failure 502 {object} model.PredictAPIResponse
// @Router /api/v1/predict [post]
func (h *PredictHandler) Predict(c *gin.Context) {
	var req model.PredictAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := GetSession(c)
	res := model.PredictAPIResponse{Status: "success", RequestID: uuid.NewString()}

	sub, err := sess.Controller.SubmitRequest(c.Request.Context(), req.ToPredictionRequest())
	if sub != nil && sub.Response != nil {
		res.Response = sub.Response
		res.Probabilities = sub.Probabilities
		res.Diagnosis = sub.Diagnosis
		chart := sub.Chart
		res.Chart = &chart
		if sub.ChartID != "" {
			res.ChartURL = "/charts/" + sub.ChartID
		}
	}
	if err != nil {
		res.Status = "error"
		res.Error = err.Error()
		res.ErrorKind = model.KindOf(err)
	}
	c.JSON(predictStatus(err), res)
}

func predictStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, view.ErrStale):
		return http.StatusConflict
	case errors.Is(err, view.ErrClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, model.ErrUnknownClass):
		return http.StatusOK
	case errors.Is(err, model.ErrNetworkFailure), errors.Is(err, model.ErrInvalidResponseShape):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
