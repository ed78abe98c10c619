package main

import (
	"github.com/osse101/AutomateGardenPot_Go/internal/bootstrap"
	"github.com/osse101/AutomateGardenPot_Go/internal/config"
	"github.com/osse101/AutomateGardenPot_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
	)
	loggerConfig.Location = bootstrap.GreenhouseName

	logger.InitLogger(loggerConfig)
}
