// Package config
package config

import (
	"errors"
	"time"

	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
)

type HttpServerLimit struct {
	RateLimit         int           `json:"rate_limit"`
	RateLimitWindow   string        `json:"rate_limit_window"`
	RateLimitDuration time.Duration `json:"-"`
	PageSizeMax       int           `json:"page_size_max"`
	PageSizeDefault   int           `json:"page_size_default"`
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:       60,
		RateLimitWindow: "1m",
		PageSizeMax:     100,
		PageSizeDefault: 50,
	}
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.limits.rate_limit_window"), err)
	} else {
		config.RateLimitDuration = duration
	}

	if config.PageSizeMax <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.page_size_max, value must be larger than 0"))
	}
	if config.PageSizeDefault <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.page_size_default, value must be larger than 0"))
	}
	if config.PageSizeDefault > config.PageSizeMax {
		return ValidFail(errors.New("invalid json field http_server.limits.page_size_default, value must not exceed http_server.limits.page_size_max"))
	}
	return ValidPass()
}
