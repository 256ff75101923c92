// internal/api/router.go
package api

import (
	"fmt"
	"net/http"

	"github.com/SidharthAnand04/infiniti-v/internal/config"
	"github.com/SidharthAnand04/infiniti-v/internal/di"
	"github.com/SidharthAnand04/infiniti-v/internal/services"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures the HTTP routes. Services are taken from the
// container, never created here.
func SetupRouter() (*gin.Engine, error) {
	cfg := config.GetCurrentConfig()

	container := di.GetContainer()

	scriptService, ok := container.Get("script").(*services.ScriptService)
	if !ok {
		return nil, fmt.Errorf("script service not initialized")
	}

	statsService, ok := container.Get("stats").(*services.StatsService)
	if !ok {
		return nil, fmt.Errorf("stats service not initialized")
	}

	handler := NewHandler(scriptService, statsService)

	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(RequestIDMiddleware())

	// Health
	r.GET("/healthz", handler.HealthCheck)

	// Compatibility route: single prompt in, bare ∞-VScript array out
	r.POST("/generate_scene", GenerationRateLimit(), handler.GenerateScene)

	// WebSocket streaming
	r.GET("/ws/generate", handler.GenerateStream)

	// ===============================
	// API route group
	// ===============================
	api := r.Group("/api")
	api.Use(DefaultRateLimit())
	{
		scriptsGroup := api.Group("/scripts")
		{
			scriptsGroup.POST("", GenerationRateLimit(), handler.GenerateScript)
			scriptsGroup.GET("/vocabulary", handler.GetTimingVocabulary)
		}

		settingsGroup := api.Group("/settings")
		{
			settingsGroup.GET("/generation", handler.GetGenerationSettings)
			settingsGroup.PUT("/generation", handler.UpdateGenerationSettings)
		}

		api.GET("/stats", handler.GetStats)

		wsGroup := api.Group("/ws")
		{
			wsGroup.GET("/status", handler.GetStreamStatus)
		}
	}

	return r, nil
}

// corsMiddleware implements cross-origin resource sharing.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
