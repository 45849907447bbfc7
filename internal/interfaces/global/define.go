// Package global
package global

import "context"

// Callable is a shutdown hook registered on the cleaner. Invoke receives
// a deadline context and must return once its resource is released.
type Callable interface {
	Invoke(ctx context.Context) error
}
