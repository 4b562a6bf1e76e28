package configs

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console logger in development and a JSON logger otherwise.
func NewLogger(env ENV) (*zap.Logger, error) {
	var cfg zap.Config
	if env.IsDevelopment() {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(env.LogLevel)
	if err == nil {
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	return cfg.Build()
}
