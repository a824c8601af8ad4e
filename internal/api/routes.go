package api

import (
	"alcyxob/athlete-tracker/internal/domain"
	"alcyxob/athlete-tracker/internal/metrics"
	"alcyxob/athlete-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate mockgen -destination=mocks_test.go -package=api_test alcyxob/athlete-tracker/internal/service AnalyticsService,AuthService,RMService,ReportService,SessionService,UserService,WeightService,WellnessService

// Services groups the service dependencies of the HTTP API.
type Services struct {
	Auth      service.AuthService
	Users     service.UserService
	Wellness  service.WellnessService
	Sessions  service.SessionService
	RMs       service.RMService
	Weight    service.WeightService
	Analytics service.AnalyticsService
	Reports   service.ReportService
}

// SetupRoutes registers middleware and every route on router.
// metricsGatherer is served on /metrics when not nil.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	services Services,
	metricsManager *metrics.Manager,
	metricsGatherer prometheus.Gatherer,
) {
	router.Use(PanicRecovery(metricsManager), LogRequest())
	if metricsManager != nil {
		router.Use(RequestMetrics(metricsManager))
	}

	authHandler := NewAuthHandler(services.Auth)
	userHandler := NewUserHandler(services.Users)
	wellnessHandler := NewWellnessHandler(services.Wellness)
	sessionHandler := NewSessionHandler(services.Sessions)
	rmHandler := NewRMHandler(services.RMs)
	weightHandler := NewWeightHandler(services.Weight)
	analyticsHandler := NewAnalyticsHandler(services.Analytics, services.Reports)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if metricsGatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metricsGatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		protected.GET("/me", userHandler.Me)

		wellnessGroup := protected.Group("/wellness")
		{
			wellnessGroup.POST("", wellnessHandler.Submit)
			wellnessGroup.GET("", wellnessHandler.Mine)
		}

		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.GET("", sessionHandler.ListMine)
			sessionGroup.GET("/:id", sessionHandler.Detail)
			sessionGroup.POST("/:id/start", sessionHandler.Start)
			sessionGroup.PUT("/:id/feedback", sessionHandler.Feedback)
			sessionGroup.POST("/:id/end", sessionHandler.End)
		}

		rmGroup := protected.Group("/rm")
		{
			rmGroup.GET("", rmHandler.List)
			rmGroup.POST("", rmHandler.SaveManual)
			rmGroup.POST("/vma", rmHandler.SaveVMA)
			rmGroup.DELETE("/:name", rmHandler.Delete)
		}

		weightGroup := protected.Group("/weight")
		{
			weightGroup.GET("", weightHandler.History)
			weightGroup.POST("", weightHandler.Record)
		}

		protected.GET("/analytics/dashboard", analyticsHandler.Dashboard)

		// --- Admin Routes ---
		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin, domain.RoleSuperAdmin))
		{
			adminGroup.GET("/athletes", userHandler.ListAthletes)
			adminGroup.PUT("/athletes/:id/group", userHandler.AssignGroup)
			adminGroup.GET("/athletes/:id/wellness", wellnessHandler.ForAthlete)
			adminGroup.POST("/athletes/:id/reports", analyticsHandler.ExportReport)
			adminGroup.GET("/athletes/:id/reports", analyticsHandler.ListReports)
			adminGroup.GET("/wellness", wellnessHandler.ByDate)
			adminGroup.GET("/monitoring", analyticsHandler.Monitoring)

			adminGroup.GET("/sessions", sessionHandler.ListAll)
			adminGroup.POST("/sessions", sessionHandler.Create)
			adminGroup.GET("/sessions/:id", sessionHandler.GetAny)
			adminGroup.PUT("/sessions/:id", sessionHandler.Update)
			adminGroup.DELETE("/sessions/:id", sessionHandler.Delete)

			adminGroup.PUT("/users/:id/role", RoleMiddleware(domain.RoleSuperAdmin), userHandler.SetRole)
		}
	}
}
