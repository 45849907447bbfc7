package database

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type HealthOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewHealthOperation(db *gorm.DB, queryTimeout time.Duration) *HealthOperation {
	return &HealthOperation{db: db, queryTimeout: queryTimeout}
}

func (healthOperation *HealthOperation) Ping(ctx context.Context) error {
	dbPool, err := healthOperation.db.DB()
	if err != nil {
		return err
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthOperation.queryTimeout)
	defer cancel()
	return dbPool.PingContext(timeoutCtx)
}

func (healthOperation *HealthOperation) PoolStats() map[string]interface{} {
	dbPool, err := healthOperation.db.DB()
	if err != nil {
		return map[string]interface{}{"status": "unavailable"}
	}
	stats := dbPool.Stats()
	return map[string]interface{}{
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"max_open":         stats.MaxOpenConnections,
		"wait_count":       stats.WaitCount,
	}
}
