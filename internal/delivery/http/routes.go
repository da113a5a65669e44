package http

import (
	"github.com/gin-gonic/gin"
	"github.com/pricelens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	{
		// Search endpoints
		v1.POST("/search", handler.Search)
		v1.GET("/search", handler.SearchQuery)

		// Directory endpoints
		countries := v1.Group("/countries")
		{
			countries.GET("", handler.Countries)
			countries.GET("/:code/vendors", handler.Vendors)
		}
		v1.GET("/examples", handler.Examples)

		// History endpoints
		v1.GET("/searches/recent", handler.RecentSearches)
	}

	return router
}
