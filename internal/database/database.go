package database

import (
	"context"
	"fmt"
	"time"

	c "github.com/skyharbor-dev/crew-roster/internal/interfaces/config"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
	. "github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	"gorm.io/gorm"
)

// ConnectDatabase opens the configured database, migrates the schema and
// sizes the connection pool. The returned handle is owned by the caller
// and closed through the shutdown callback.
func ConnectDatabase(config *c.DatabaseConfig, logger log.LoggerInterface) (*gorm.DB, error) {
	dialector := config.GetConnection(logger)
	if dialector == nil {
		return nil, fmt.Errorf("unsupported database type %s", config.Type)
	}

	connectionConfig := &gorm.Config{}
	connectionConfig.DefaultTransactionTimeout = 5 * time.Second
	connectionConfig.PrepareStmt = true
	// constraint failures must be classifiable across dialects
	connectionConfig.TranslateError = true

	db, err := gorm.Open(dialector, connectionConfig)
	if err != nil {
		return nil, fmt.Errorf("error occurred while connecting to database: %w", err)
	}

	// flights is migrated for standalone and test setups, the table itself
	// belongs to the flight planning system and is never written here
	err = db.Migrator().AutoMigrate(&CrewMember{}, &CrewTiming{}, &RosterAssignment{}, &Flight{})
	if err != nil {
		return nil, fmt.Errorf("error occurred while migrating database: %w", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error occurred while creating database pool: %w", err)
	}

	maxOpenConnections := float32(config.ServerMaxConnections) * 0.8
	maxIdleConnections := maxOpenConnections / 5

	dbPool.SetMaxIdleConns(int(maxIdleConnections))
	dbPool.SetMaxOpenConns(int(maxOpenConnections))
	dbPool.SetConnMaxLifetime(config.ConnectIdleDuration)
	if err := dbPool.Ping(); err != nil {
		return nil, fmt.Errorf("error occurred while pinging database: %w", err)
	}
	return db, nil
}

type DatabaseShutdownCallback struct {
	db *gorm.DB
}

func NewDatabaseShutdownCallback(db *gorm.DB) *DatabaseShutdownCallback {
	return &DatabaseShutdownCallback{db: db}
}

func (dc *DatabaseShutdownCallback) Invoke(_ context.Context) error {
	dbPool, err := dc.db.DB()
	if err != nil {
		return err
	}
	return dbPool.Close()
}
