// Package interfaces
package interfaces

import (
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/config"
)

// ConfigManagerInterface hands out the validated configuration and can
// write it back, which the first-run default generation relies on.
type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
