package logging

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// New builds a zap logger for the given environment.
// Development gets the console encoder at debug level; everything else gets JSON at info.
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "development":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}
	return cfg.Build()
}

// GormLevel maps the environment to gorm's SQL log level.
func GormLevel(env string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "development":
		return logger.Info
	default:
		return logger.Warn
	}
}
