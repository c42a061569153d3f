// Package logger builds the zap logger shared by the commands.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a JSON logger for production, a colored console one otherwise.
func NewLogger(isProduction bool, level string) (*zap.Logger, error) {
	atomicLevel, errLevel := zap.ParseAtomicLevel(level)
	if errLevel != nil {
		return nil,
			fmt.Errorf("invalid log level %q: %w", level, errLevel)
	}

	var cfg zap.Config

	if isProduction {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.Level = atomicLevel

	return cfg.Build()
}
