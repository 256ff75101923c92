// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SidharthAnand04/infiniti-v/internal/api"
	"github.com/SidharthAnand04/infiniti-v/internal/app"
	"github.com/SidharthAnand04/infiniti-v/internal/config"
	"github.com/SidharthAnand04/infiniti-v/internal/di"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("starting ∞-V scene script server...")

	// 1. Load the base configuration
	baseConfig, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	log.Printf("configuration loaded, port: %s", baseConfig.Port)

	// 2. Create the required directories
	createDirectories(baseConfig)

	// 3. Initialize the configuration system
	if err := config.InitConfig(baseConfig.DataDir); err != nil {
		log.Fatalf("failed to initialize configuration system: %v", err)
	}

	// 4. Initialize the log system
	if err := app.InitLogger(baseConfig.LogDir); err != nil {
		log.Fatalf("failed to initialize log system: %v", err)
	}

	// 5. Initialize all services in dependency order
	if err := app.InitServices(); err != nil {
		log.Fatalf("failed to initialize services: %v", err)
	}
	log.Printf("services initialized: %v", di.GetContainer().GetNames())

	// 6. Health-check the wiring, then set up routes
	if err := performHealthCheck(); err != nil {
		log.Fatalf("service health check failed: %v", err)
	}

	router, err := api.SetupRouter()
	if err != nil {
		log.Fatalf("failed to set up routes: %v", err)
	}

	// 7. Start the server
	log.Printf("server listening on port %s", baseConfig.Port)

	setupGracefulShutdown(router, baseConfig.Port)
}

// performHealthCheck verifies the critical services are registered.
func performHealthCheck() error {
	container := di.GetContainer()

	criticalServices := []string{"script", "stats"}

	for _, serviceName := range criticalServices {
		if service := container.Get(serviceName); service == nil {
			return fmt.Errorf("critical service not registered: %s", serviceName)
		}
	}

	return nil
}

// setupGracefulShutdown runs the server until an interrupt arrives.
func setupGracefulShutdown(router *gin.Engine, port string) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced server shutdown: %v", err)
	}

	log.Println("server shut down cleanly")
}

// createDirectories creates the directory layout the service expects.
func createDirectories(cfg *config.Config) {
	dirs := []string{
		cfg.DataDir,
		cfg.LogDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}
}
