// internal/app/app.go
package app

import (
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/SidharthAnand04/infiniti-v/internal/agents/local"
	"github.com/SidharthAnand04/infiniti-v/internal/config"
	"github.com/SidharthAnand04/infiniti-v/internal/di"
	"github.com/SidharthAnand04/infiniti-v/internal/services"
	"github.com/SidharthAnand04/infiniti-v/internal/utils"
)

// The agent implementation every pipeline stage uses today. A
// generative backend gets its own name and registers under it.
const agentImplementation = "local"

// InitServices creates and registers all services in dependency order.
func InitServices() error {
	cfg := config.GetCurrentConfig()
	container := di.GetContainer()

	statsService := services.NewStatsService()
	container.Register("stats", statsService)

	scriptService, err := services.NewScriptService(agentImplementation, cfg.Generation)
	if err != nil {
		return fmt.Errorf("failed to create script service: %w", err)
	}
	container.Register("script", scriptService)

	return nil
}

// InitLogger initializes the log system with a dated log file.
func InitLogger(logDir string) error {
	logFile := filepath.Join(logDir, fmt.Sprintf("server-%s.log", time.Now().Format("2006-01-02")))
	if err := utils.InitLogger(logFile); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if config.GetCurrentConfig().DebugMode {
		utils.GetLogger().SetLogLevel(utils.DEBUG)
	}

	return nil
}
