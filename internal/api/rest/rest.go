package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/trackforge/bottrack/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Status endpoint (public read access)
		v1.GET("/status", handler.GetStatus)

		// Trend endpoints (public read access)
		v1.GET("/trends", handler.GetTrends)
		v1.GET("/trends/totals", handler.GetTrendTotals)

		// Rank endpoint (public read access)
		v1.GET("/ranks", handler.GetRanks)

		// Category endpoints (reads public, mutations require authentication)
		v1.GET("/categories", handler.ListCategories)
		v1.POST("/categories", middleware.Auth(authCfg), handler.CreateCategory)
		v1.DELETE("/categories/:category", middleware.Auth(authCfg), handler.DeleteCategory)
		v1.GET("/categories/:category/entities", handler.GetCategoryEntities)
		v1.POST("/categories/:category/ack", middleware.Auth(authCfg), handler.AcknowledgeCategory)

		// Entity acknowledgement (requires authentication)
		v1.POST("/entities/:id/ack", middleware.Auth(authCfg), handler.AcknowledgeEntity)

		// Cycle control (requires authentication)
		v1.POST("/cycles", middleware.Auth(authCfg), handler.TriggerCycle)
		v1.POST("/ingestion/resume", middleware.Auth(authCfg), handler.ResumeIngestion)
	}
}
