// Package global
package global

import "flag"

var (
	DebugMode      = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath = flag.String("config", "./config.json", "Path to configuration file")
	EnvFilePath    = flag.String("env", "./.env", "Path to optional dotenv file with credential overrides")
)

const (
	AppName    = "crew-roster"
	AppVersion = "1.2.0"

	// MetricsNamespace prefixes every exported prometheus metric.
	// Underscored because metric names reject hyphens.
	MetricsNamespace = "crew_roster"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	// RosterCrewSize is the number of crew members one roster assigns to a flight.
	RosterCrewSize = 4

	// RosterCreatedBy marks rows written by the assignment transaction.
	RosterCreatedBy = "system"
)
