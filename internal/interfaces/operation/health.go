// Package operation
package operation

import "context"

type HealthOperationInterface interface {
	// Ping verifies the database connection is alive.
	Ping(ctx context.Context) error
	// PoolStats reports connection pool gauges for diagnostics.
	PoolStats() map[string]interface{}
}
