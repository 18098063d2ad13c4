// Package logger owns the process-wide zap logger. Engine packages
// never log; only the delivery layer and entrypoints do.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"niyam/internal/config"
)

// Log is the global logger. Init must run before first use; it
// defaults to a no-op logger so tests need no setup.
var Log = zap.NewNop()

// Init builds the global logger from configuration. Format "json"
// selects the production encoder; anything else selects the console
// development encoder.
func Init(cfg config.LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	built, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	Log = built
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
