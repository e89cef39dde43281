package api

import (
	"github.com/epsilon003/Illegally-Blonde/internal/cache"
	"github.com/epsilon003/Illegally-Blonde/internal/config"
	"github.com/epsilon003/Illegally-Blonde/internal/scraper"
	"github.com/epsilon003/Illegally-Blonde/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, cache cache.Cache, scraper *scraper.Scraper, downloader *scraper.JudgmentDownloader, logger *logger.Logger, cfg *config.Config) {
	h := NewHandlers(db, cache, scraper, downloader, logger, cfg)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", h.HealthCheck)

		// Case endpoints
		api.POST("/fetch-case", h.FetchCase)
		api.POST("/cases/bulk", h.BulkFetch)

		// Cause list
		api.POST("/fetch-causelist", h.FetchCauseList)

		// Judgment download
		api.POST("/download-judgment", h.DownloadJudgment)

		// Reference and history
		api.GET("/courts", h.Courts)
		api.GET("/history", h.History)

		// Cache stats
		api.GET("/cache/stats", h.CacheStats)
	}
}
