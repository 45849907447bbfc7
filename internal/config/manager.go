package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	c "github.com/skyharbor-dev/crew-roster/internal/interfaces/config"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/global"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
	"github.com/skyharbor-dev/crew-roster/internal/utils"
)

type ConfigManager struct {
	logger     log.LoggerInterface
	configPath string
	config     *c.Config
}

// NewConfigManager reads the JSON configuration file, creating a default
// one on first run, then applies dotenv/environment credential overrides
// and validates the result.
func NewConfigManager(logger log.LoggerInterface) (*ConfigManager, error) {
	manager := &ConfigManager{
		logger:     logger,
		configPath: *global.ConfigFilePath,
	}

	bytes, err := os.ReadFile(manager.configPath)
	if os.IsNotExist(err) {
		manager.config = c.DefaultConfig()
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
		return nil, errors.New("the configuration file does not exist and has been created, please try again after editing it")
	}
	if err != nil {
		return nil, fmt.Errorf("error occurred while reading configuration file: %w", err)
	}

	manager.config = &c.Config{}
	if err := json.Unmarshal(bytes, manager.config); err != nil {
		return nil, fmt.Errorf("the configuration file does not contain valid JSON, %v", err)
	}

	manager.applyEnvOverrides()

	if result := manager.config.CheckValid(logger); result.IsFail() {
		if result.OriginErr() != nil {
			return nil, fmt.Errorf("%w: %w", result.Error(), result.OriginErr())
		}
		return nil, result.Error()
	}
	return manager, nil
}

// applyEnvOverrides lets database credentials come from the environment or
// an optional .env file so they can stay out of config.json.
func (manager *ConfigManager) applyEnvOverrides() {
	if err := godotenv.Load(*global.EnvFilePath); err == nil {
		manager.logger.DebugF("Loaded environment overrides from %s", *global.EnvFilePath)
	}

	database := manager.config.Database
	if value := os.Getenv("DB_HOST"); value != "" {
		database.Host = value
	}
	if value := os.Getenv("DB_PORT"); value != "" {
		database.Port = utils.StrToInt(value, database.Port)
	}
	if value := os.Getenv("DB_USERNAME"); value != "" {
		database.Username = value
	}
	if value := os.Getenv("DB_PASSWORD"); value != "" {
		database.Password = value
	}
	if value := os.Getenv("DB_DATABASE"); value != "" {
		database.Database = value
	}
}

func (manager *ConfigManager) Config() *c.Config {
	return manager.config
}

func (manager *ConfigManager) SaveConfig() error {
	data, err := json.MarshalIndent(manager.config, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(manager.configPath, data, global.DefaultFilePermissions)
}
