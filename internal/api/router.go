package api

import (
	"net/http"
	"time"

	"github.com/business-directory-api/internal/config"
	"github.com/business-directory-api/internal/service"
	"github.com/business-directory-api/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, store storage.BlobStore, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	bulkHandler := NewBulkUploadHandler(services, store, cfg, log)
	exportHandler := NewExportHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// Uploaded images are served straight off the blob store directory
	router.Static("/uploads", cfg.Upload.UploadDir)

	// Admin API
	admin := router.Group("/api/admin")
	admin.Use(adminAuth(cfg.Auth.JWTSecret))
	{
		admin.POST("/bulk-upload/preview", bulkHandler.Preview)
		admin.POST("/bulk-upload", bulkHandler.Confirm)
		admin.POST("/get-default-products", bulkHandler.DefaultProducts)
		admin.GET("/bulk-upload/runs/:run_id", bulkHandler.GetRun)
		admin.GET("/bulk-upload/runs/:run_id/errors", bulkHandler.GetRunErrors)

		admin.GET("/export", exportHandler.StreamExport)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "business-directory-api",
	})
}

// metricsHandler returns directory record counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		profilesCount, _ := services.Export.GetCount(ctx, "profiles")
		productsCount, _ := services.Export.GetCount(ctx, "products")
		galleryCount, _ := services.Export.GetCount(ctx, "gallery")

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"profiles": profilesCount,
				"products": productsCount,
				"gallery":  galleryCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
