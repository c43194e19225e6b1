package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

type Config struct {
	Env         string `env:"LOG_ENV" env-default:"prod"`
	Level       string `env:"LOG_LEVEL" env-default:"info"`
	LogRequests bool   `env:"LOG_REQUESTS" env-default:"false"`
}

func New(config *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", config.Level, err)
	}

	var zapConfig zap.Config
	switch config.Env {
	case envLocal:
		zapConfig = zap.NewDevelopmentConfig()
	case envProd:
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown log env %q", config.Env)
	}

	zapConfig.Level = zap.NewAtomicLevelAt(level)

	log, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return log, nil
}
