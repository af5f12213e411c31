package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, handler *Handler) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	router.GET("/metrics", handler.Metrics)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Analysis endpoints
		analyze := v1.Group("/analyze")
		{
			analyze.POST("", handler.Analyze)            // POST /api/v1/analyze
			analyze.POST("/batch", handler.AnalyzeBatch) // POST /api/v1/analyze/batch
		}

		// Lexicon management endpoints
		lex := v1.Group("/lexicon")
		{
			lex.GET("", handler.GetLexicon)                    // GET /api/v1/lexicon
			lex.POST("/reload", handler.ReloadLexicon)         // POST /api/v1/lexicon/reload
			lex.GET("/patterns", handler.ListPatterns)         // GET /api/v1/lexicon/patterns
			lex.POST("/patterns", handler.CreatePattern)       // POST /api/v1/lexicon/patterns
			lex.PUT("/patterns/:id", handler.UpdatePattern)    // PUT /api/v1/lexicon/patterns/:id
			lex.DELETE("/patterns/:id", handler.DeletePattern) // DELETE /api/v1/lexicon/patterns/:id
		}
	}
}
