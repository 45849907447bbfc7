package main

import (
	"flag"
	"fmt"

	"github.com/skyharbor-dev/crew-roster/internal/config"
	"github.com/skyharbor-dev/crew-roster/internal/database"
	"github.com/skyharbor-dev/crew-roster/internal/http_server"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/global"
	"github.com/skyharbor-dev/crew-roster/internal/interfaces/operation"
	"github.com/skyharbor-dev/crew-roster/internal/metrics"
	"github.com/skyharbor-dev/crew-roster/internal/utils"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	flag.Parse()

	defer recoverFromError()

	logger := utils.NewLogger()
	logger.Init(*global.DebugMode)

	logger.Info("Application initializing...")

	cleaner := config.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager, err := config.NewConfigManager(logger)
	if err != nil {
		logger.FatalF("Error occurred while loading config, details: %v", err)
		return
	}
	appConfig := configManager.Config()

	db, err := database.ConnectDatabase(appConfig.Database, logger)
	if err != nil {
		logger.FatalF("Error occurred while initializing database, details: %v", err)
		return
	}

	cleaner.Add(database.NewDatabaseShutdownCallback(db))

	queryTimeout := appConfig.Database.QueryDuration
	operations := operation.NewDatabaseOperations(
		database.NewCrewOperation(db, queryTimeout),
		database.NewTimingOperation(db, queryTimeout),
		database.NewRosterOperation(db, queryTimeout),
		database.NewFlightOperation(db, queryTimeout),
		database.NewHealthOperation(db, queryTimeout),
	)

	appMetrics := metrics.NewMetrics(global.MetricsNamespace)

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, operations, appMetrics)

	http_server.StartHttpServer(applicationContent)
}
