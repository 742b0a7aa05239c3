package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/MealPlanner_Go/internal/config"
	"github.com/osse101/MealPlanner_Go/internal/logger"
)

// SetupLogger installs the slog default described by cfg, writing to w.
// Source locations are included only in development.
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)

	l := logger.InitLoggerWithWriter(loggerConfig, w)

	l.Debug(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel())
	l.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"ops_port", cfg.OpsPort,
		"cache_size", cfg.CacheSize,
		"cache_ttl", cfg.CacheTTL)

	return l
}
