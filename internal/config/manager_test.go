package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	c "github.com/skyharbor-dev/crew-roster/internal/interfaces/config"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/global"
	"github.com/skyharbor-dev/crew-roster/internal/utils"
)

func setConfigPath(t *testing.T, path string) {
	t.Helper()
	previousConfig := *global.ConfigFilePath
	previousEnv := *global.EnvFilePath
	*global.ConfigFilePath = path
	*global.EnvFilePath = filepath.Join(t.TempDir(), "missing.env")
	t.Cleanup(func() {
		*global.ConfigFilePath = previousConfig
		*global.EnvFilePath = previousEnv
	})
}

func TestNewConfigManagerCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	setConfigPath(t, path)

	_, err := NewConfigManager(utils.NewLogger())
	if err == nil {
		t.Fatal("first run must report that the config file was just created")
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("default config file was not written: %v", statErr)
	}

	// second run picks up the generated default
	manager, err := NewConfigManager(utils.NewLogger())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	config := manager.Config()
	if config.Database.DBType != c.SQLite {
		t.Errorf("default database type = %s; expected sqlite3", config.Database.DBType)
	}
	if config.Database.QueryDuration != 5*time.Second {
		t.Errorf("query duration = %v; expected 5s", config.Database.QueryDuration)
	}
	if config.HttpServer.Address != "0.0.0.0:8000" {
		t.Errorf("server address = %q; expected 0.0.0.0:8000", config.HttpServer.Address)
	}
	if config.HttpServer.Limits.RateLimitDuration != time.Minute {
		t.Errorf("rate limit window = %v; expected 1m", config.HttpServer.Limits.RateLimitDuration)
	}
}

func TestNewConfigManagerRejectsBadDatabaseType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	setConfigPath(t, path)

	broken := c.DefaultConfig()
	broken.Database.Type = "oracle"
	writeConfig(t, path, broken)

	if _, err := NewConfigManager(utils.NewLogger()); err == nil {
		t.Fatal("unsupported database type must fail validation")
	}
}

func TestNewConfigManagerAppliesEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	setConfigPath(t, path)

	base := c.DefaultConfig()
	base.Database.Type = "mysql"
	base.Database.Host = "localhost"
	base.Database.Port = 3306
	writeConfig(t, path, base)

	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_PASSWORD", "hunter2")

	manager, err := NewConfigManager(utils.NewLogger())
	if err != nil {
		t.Fatalf("NewConfigManager failed: %v", err)
	}
	database := manager.Config().Database
	if database.Host != "db.internal" || database.Port != 3307 || database.Password != "hunter2" {
		t.Errorf("overrides not applied: host=%s port=%d", database.Host, database.Port)
	}
}

func writeConfig(t *testing.T, path string, config *c.Config) {
	t.Helper()
	manager := &ConfigManager{configPath: path, config: config}
	if err := manager.SaveConfig(); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}
