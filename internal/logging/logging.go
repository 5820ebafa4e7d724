// Package logging holds the process-wide zap logger used by the
// ingestion and profile pipelines.
package logging

import (
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

// Init configures the global logger. With debug enabled the development
// config is used; otherwise production config with console encoding.
func Init(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	built, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	logger = built.Sugar()
}

// L returns the global sugared logger, initializing it lazily with
// defaults when Init was never called (tests, library use).
func L() *zap.SugaredLogger {
	if logger == nil {
		Init(false)
	}
	return logger
}

// Sync flushes buffered log entries. Safe to call on a nil logger.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
