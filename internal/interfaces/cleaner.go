// Package interfaces
package interfaces

import (
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/global"
)

// CleanerInterface runs registered shutdown callbacks in reverse
// registration order when the process receives an interrupt, so the HTTP
// server drains before the database pool closes.
type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	Clean()
}
