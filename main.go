package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ivf-predictor/webclient/internal/chart"
	"github.com/ivf-predictor/webclient/internal/client"
	"github.com/ivf-predictor/webclient/internal/config"
	"github.com/ivf-predictor/webclient/internal/db"
	"github.com/ivf-predictor/webclient/internal/handler"
	"github.com/ivf-predictor/webclient/internal/logger"
	"github.com/ivf-predictor/webclient/internal/service"
	"github.com/ivf-predictor/webclient/internal/view"
	"github.com/ivf-predictor/webclient/internal/web"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title IVF Predictor Web API
// @version 1.0
// @description Form and JSON front end for the IVF outcome prediction service.
// @BasePath /
func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Log)
	if envErr != nil {
		log.Debug().Msg("No .env file found, using process environment")
	}

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	predictor := client.NewPredictorClient(cfg.Predictor)

	var predictions *service.PredictionService
	if cfg.History.Enabled {
		pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to postgres")
		}
		defer pool.Close()

		pg := &db.Postgres{Pool: pool}
		if err := pg.EnsurePredictionSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure prediction schema")
		}
		predictions = service.NewPredictionService(predictor, pg)
		log.Info().Msg("Prediction history enabled")
	} else {
		predictions = service.NewPredictionService(predictor, nil)
	}

	templates, err := web.LoadTemplates()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load templates")
	}

	charts := chart.NewRenderer()
	sessions := web.NewSessionStore(cfg.Server.SessionTTL, cfg.Server.MaxSessions, func(display view.Display) *view.Controller {
		return view.NewController(predictions, charts, display)
	})
	go sessions.Run(ctx, time.Minute)

	router := handler.NewRouter(handler.RouterConfig{
		Sessions:       sessions,
		SessionTTL:     cfg.Server.SessionTTL,
		Templates:      templates,
		Charts:         charts,
		Predictions:    predictions,
		HistoryLimit:   cfg.History.Limit,
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("predictor", predictor.BaseURL()).
			Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
