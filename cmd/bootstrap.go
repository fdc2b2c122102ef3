package cmd

import (
	"log/slog"

	"github.com/joho/godotenv"

	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/logger"
)

// bootstrap loads .env and the environment, then installs the process logger.
func bootstrap() (config.Config, *slog.Logger, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logCfg.FilePath = cfg.LogFile

	log, err := logger.Init(logCfg)
	if err != nil {
		return config.Config{}, nil, err
	}

	if envErr != nil {
		log.Info(".env file not found, using environment variables")
	}

	return cfg, log, nil
}
