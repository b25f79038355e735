package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"factcheck/cmd/fx/account_fx"
	"factcheck/cmd/fx/analysis_fx"
	"factcheck/cmd/fx/config_fx"
	"factcheck/cmd/fx/controllers_fx"
	"factcheck/cmd/fx/db_fx"
	"factcheck/cmd/fx/feedback_fx"
	"factcheck/cmd/fx/metrics_fx"
	"factcheck/internal/api"
	"factcheck/internal/config"
	"factcheck/internal/infra"
	"factcheck/internal/models/request_models"
)

func main() {
	app := fx.New(
		config_fx.Module,
		metrics_fx.Module,
		db_fx.Module,
		feedback_fx.Module,
		account_fx.Module,
		analysis_fx.Module,
		controllers_fx.Module,

		fx.Invoke(SetupRuntime),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SetupRuntime(cfg *config.Config) error {
	infra.InitLogger(cfg.App.Name, cfg.App.Env, cfg.App.LogLevel)
	if cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	return request_models.RegisterValidators(cfg.Feedback.Verdicts)
}

func ProvideRouter(cfg *config.Config, metrics *infra.Metrics, gatherer prometheus.Gatherer, ctrls api.Controllers) *gin.Engine {
	return api.NewRouter(cfg, metrics, gatherer, ctrls)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Str("store", cfg.Store.Driver).Msg("Starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
