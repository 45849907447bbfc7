// Package interfaces
package interfaces

import (
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/log"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	"github.com/skyharbor-dev/crew-roster/internal/metrics"
)

type ApplicationContent struct {
	configManager ConfigManagerInterface
	cleaner       CleanerInterface
	logger        log.LoggerInterface
	operations    *operation.DatabaseOperations
	metrics       *metrics.Metrics
}

func NewApplicationContent(
	configManager ConfigManagerInterface,
	cleaner CleanerInterface,
	logger log.LoggerInterface,
	db *operation.DatabaseOperations,
	metrics *metrics.Metrics,
) *ApplicationContent {
	return &ApplicationContent{
		configManager: configManager,
		cleaner:       cleaner,
		logger:        logger,
		operations:    db,
		metrics:       metrics,
	}
}

func (app *ApplicationContent) ConfigManager() ConfigManagerInterface { return app.configManager }

func (app *ApplicationContent) Cleaner() CleanerInterface { return app.cleaner }

func (app *ApplicationContent) Logger() log.LoggerInterface { return app.logger }

func (app *ApplicationContent) Operations() *operation.DatabaseOperations { return app.operations }

func (app *ApplicationContent) Metrics() *metrics.Metrics { return app.metrics }
