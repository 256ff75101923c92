// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Current configuration singleton.
var (
	currentConfig *AppConfig
	configMutex   sync.RWMutex
	configFile    string
)

// AppConfig holds the full runtime configuration of the service.
type AppConfig struct {
	// Base settings
	Port      string `json:"port"`
	DataDir   string `json:"data_dir"`
	LogDir    string `json:"log_dir"`
	DebugMode bool   `json:"debug_mode"`

	// Generation pipeline settings
	Generation GenerationConfig `json:"generation"`
}

// GenerationConfig tunes the scene-script pipeline. The block schema
// itself is fixed; these only shape how much content is produced.
type GenerationConfig struct {
	DialogueTurns       int `json:"dialogue_turns"`
	TargetLengthSeconds int `json:"target_length_seconds"`
}

// Config stores the base settings read from the environment.
type Config struct {
	Port                string
	DataDir             string
	LogDir              string
	DebugMode           bool
	DialogueTurns       int
	TargetLengthSeconds int
}

// Load reads the base configuration from the environment.
func Load() (*Config, error) {
	// .env is optional
	godotenv.Load()

	config := &Config{
		Port:                getEnv("PORT", "5000"),
		DataDir:             getEnvPath("DATA_DIR", "data"),
		LogDir:              getEnvPath("LOG_DIR", "logs"),
		DebugMode:           getEnvBool("DEBUG_MODE", true),
		DialogueTurns:       getEnvInt("DIALOGUE_TURNS", 8),
		TargetLengthSeconds: getEnvInt("TARGET_LENGTH_SECONDS", 150),
	}

	if config.DialogueTurns <= 0 {
		return nil, fmt.Errorf("DIALOGUE_TURNS must be positive, got %d", config.DialogueTurns)
	}

	return config, nil
}

// getEnv returns the environment value or a default.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvPath returns a directory from the environment, creating it if needed.
func getEnvPath(key, defaultValue string) string {
	path := getEnv(key, defaultValue)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0755); err != nil {
			fmt.Printf("warning: failed to create directory %s: %v\n", path, err)
		}
	}

	return path
}

// getEnvBool returns a boolean environment value or a default.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt returns an integer environment value or a default.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// InitConfig initializes the configuration manager.
func InitConfig(dataDir string) error {
	configFile = filepath.Join(dataDir, "config.json")

	baseConfig, err := Load()
	if err != nil {
		return err
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	currentConfig = &AppConfig{
		Port:      baseConfig.Port,
		DataDir:   baseConfig.DataDir,
		LogDir:    baseConfig.LogDir,
		DebugMode: baseConfig.DebugMode,
		Generation: GenerationConfig{
			DialogueTurns:       baseConfig.DialogueTurns,
			TargetLengthSeconds: baseConfig.TargetLengthSeconds,
		},
	}

	// Merge a previously saved config, keeping the fresh base settings.
	if _, err := os.Stat(configFile); !os.IsNotExist(err) {
		data, err := os.ReadFile(configFile)
		if err == nil {
			var savedConfig AppConfig
			if json.Unmarshal(data, &savedConfig) == nil {
				savedConfig.Port = baseConfig.Port
				savedConfig.DataDir = baseConfig.DataDir
				savedConfig.LogDir = baseConfig.LogDir
				savedConfig.DebugMode = baseConfig.DebugMode

				if savedConfig.Generation.DialogueTurns <= 0 {
					savedConfig.Generation.DialogueTurns = baseConfig.DialogueTurns
				}
				if savedConfig.Generation.TargetLengthSeconds <= 0 {
					savedConfig.Generation.TargetLengthSeconds = baseConfig.TargetLengthSeconds
				}

				currentConfig = &savedConfig
			}
		}
	}

	return saveConfigLocked()
}

// GetCurrentConfig returns a copy of the current configuration.
func GetCurrentConfig() *AppConfig {
	configMutex.RLock()
	defer configMutex.RUnlock()

	if currentConfig == nil {
		// Emergency fallback
		baseConfig, err := Load()
		if err != nil {
			baseConfig = &Config{
				Port:                "5000",
				DataDir:             "data",
				LogDir:              "logs",
				DialogueTurns:       8,
				TargetLengthSeconds: 150,
			}
		}
		return &AppConfig{
			Port:      baseConfig.Port,
			DataDir:   baseConfig.DataDir,
			LogDir:    baseConfig.LogDir,
			DebugMode: baseConfig.DebugMode,
			Generation: GenerationConfig{
				DialogueTurns:       baseConfig.DialogueTurns,
				TargetLengthSeconds: baseConfig.TargetLengthSeconds,
			},
		}
	}

	configCopy := *currentConfig
	return &configCopy
}

// UpdateGenerationConfig updates the pipeline settings.
func UpdateGenerationConfig(gen GenerationConfig) error {
	configMutex.Lock()
	defer configMutex.Unlock()

	if currentConfig == nil {
		return fmt.Errorf("configuration system not initialized")
	}

	if gen.DialogueTurns <= 0 {
		return fmt.Errorf("dialogue_turns must be positive")
	}
	if gen.TargetLengthSeconds <= 0 {
		return fmt.Errorf("target_length_seconds must be positive")
	}

	currentConfig.Generation = gen
	return saveConfigLocked()
}

// SaveConfig persists the current configuration to disk.
func SaveConfig() error {
	configMutex.Lock()
	defer configMutex.Unlock()
	return saveConfigLocked()
}

func saveConfigLocked() error {
	if currentConfig == nil {
		return fmt.Errorf("no configuration to save")
	}

	dir := filepath.Dir(configFile)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(currentConfig, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	return os.WriteFile(configFile, data, 0644)
}
