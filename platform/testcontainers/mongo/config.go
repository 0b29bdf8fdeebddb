package mongo

import (
	"context"

	"go.uber.org/zap"

	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ContainerName string
	ImageName     string
	Database      string
	Username      string
	Password      string
	AuthDB        string
	Logger        Logger

	Host string
	Port string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: "mongo:8.0",
		Database:  "skulab",
		Username:  "root",
		Password:  "root",
		AuthDB:    "admin",
		Logger:    &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
