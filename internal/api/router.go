package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"factcheck/internal/api/controllers"
	"factcheck/internal/config"
	"factcheck/internal/infra"
	"factcheck/pkg/middleware"
)

type Controllers struct {
	Feedback *controllers.FeedbackController
	Account  *controllers.AccountController
	Analysis *controllers.AnalysisRequestController
}

func NewRouter(cfg *config.Config, metrics *infra.Metrics, gatherer prometheus.Gatherer, ctrls Controllers) *gin.Engine {
	cors := middleware.CORSConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxAge:         cfg.CORS.MaxAge,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.MetricsMiddleware(metrics))
	r.Use(middleware.CORSMiddleware(cors))

	RegisterRoutes(r, cfg, cors, gatherer, ctrls)
	return r
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, cors middleware.CORSConfig, gatherer prometheus.Gatherer, ctrls Controllers) {
	r.GET("/", controllers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	apiGroup := r.Group("/api")

	feedbackGroup := apiGroup.Group("/feedback")
	feedbackGroup.POST("/submit", ctrls.Feedback.SubmitFeedback)
	feedbackGroup.HEAD("/submit", middleware.Preflight(cors))
	feedbackGroup.GET("/list", ctrls.Feedback.ListFeedback)

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", ctrls.Account.Register)
	authGroup.POST("/login", ctrls.Account.Login)
	authGroup.POST("/logout", middleware.BearerAuthMiddleware(cfg.Supabase.JWTSecret), ctrls.Account.Logout)

	apiGroup.POST("/analysis-requests", ctrls.Analysis.CreateAnalysisRequest)
	apiGroup.POST("/store-analysis", ctrls.Analysis.StoreAnalysis)
	apiGroup.GET("/get-analysis/:request_id", ctrls.Analysis.GetAnalysis)
}
