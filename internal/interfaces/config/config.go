// Package config
package config

import (
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
)

type Config struct {
	Database   *DatabaseConfig   `json:"database"`
	HttpServer *HttpServerConfig `json:"http_server"`
}

func DefaultConfig() *Config {
	return &Config{
		Database:   defaultDatabaseConfig(),
		HttpServer: defaultHttpServerConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if result := c.Database.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.HttpServer.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
