package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ivf-predictor/webclient/internal/model"
	"github.com/ivf-predictor/webclient/internal/web"
)

type predictionAPI interface {
	Health(ctx context.Context) (*model.ServiceHealth, error)
	FeatureOrder(ctx context.Context) (*model.FeatureOrderResponse, error)
	ListPredictions(ctx context.Context, limit int) ([]model.PredictionRecord, error)
}

type RouterConfig struct {
	Sessions       *web.SessionStore
	SessionTTL     time.Duration
	Templates      *web.Templates
	Charts         chartStore
	Predictions    predictionAPI
	HistoryLimit   int
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), AccessLogger(), CORSMiddleware(cfg.AllowedOrigins))

	withSession := SessionMiddleware(cfg.Sessions, cfg.SessionTTL)
	page := NewPageHandler(cfg.Templates)

	// 건강 체크
	router.GET("/ping", Ping)
	router.GET("/health", NewHealthHandler(cfg.Predictions).Health)
	router.GET("/openapi.json", OpenAPIDoc)

	// 화면
	router.StaticFS("/static", http.FS(web.StaticFS()))
	router.GET("/charts/:id", NewChartHandler(cfg.Charts).GetChart)
	router.GET("/", withSession, page.Index)
	router.POST("/predict", withSession, page.Submit)

	api := router.Group("/api/v1")
	{
		api.POST("/predict", withSession, NewPredictHandler().Predict)
		api.GET("/predictions", NewHistoryHandler(cfg.Predictions, cfg.HistoryLimit).ListPredictions)
		api.GET("/feature-order", NewFeatureHandler(cfg.Predictions).GetFeatureOrder)
	}

	return router
}
