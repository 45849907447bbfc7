// Package config
package config

import (
	"errors"
	"fmt"
)

func checkPort(port uint) *ValidResult {
	if port <= 0 {
		return ValidFail(errors.New("port must be greater than zero"))
	}
	if port > 65535 {
		return ValidFail(errors.New("port must be less than 65535"))
	}
	if port < 1024 {
		return ValidFail(fmt.Errorf("the %d port may have a special usage, use it with caution", port))
	}
	return ValidPass()
}
