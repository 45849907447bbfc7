// Package config
package config

import (
	"fmt"

	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
)

type HttpServerConfig struct {
	Host      string           `json:"host"`
	Port      uint             `json:"port"`
	Address   string           `json:"-"`
	ProxyType int              `json:"proxy_type"`
	BodyLimit string           `json:"body_limit"`
	Limits    *HttpServerLimit `json:"limits"`
	CORS      *CORSConfig      `json:"cors"`
}

type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins"`
}

func defaultHttpServerConfig() *HttpServerConfig {
	return &HttpServerConfig{
		Host:      "0.0.0.0",
		Port:      8000,
		ProxyType: 0,
		BodyLimit: "1MB",
		Limits:    defaultHttpServerLimit(),
		CORS: &CORSConfig{
			AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
	}
}

func (config *HttpServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if result := checkPort(config.Port); result.IsFail() {
		return result
	}

	config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)

	if config.BodyLimit == "" {
		logger.WarnF("body_limit is empty, the length of the request body is not restricted")
	}

	if result := config.Limits.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
