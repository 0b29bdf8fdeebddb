package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/MadScie254/Bordaless-SKU-Lab/internal/config/env"
)

const (
	StorageMemory   = "memory"
	StorageMongo    = "mongo"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

var cfg *config

type config struct {
	Server   Server
	Logger   Logger
	Catalog  Catalog
	Session  Session
	Wizard   Wizard
	Settings Settings
	Mongo    Mongo
	Redis    Redis
	Postgres Database
	Gemini   Gemini
	Kafka    Kafka
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	catalogCfg, err := envconfig.NewCatalogConfig()
	if err != nil {
		return fmt.Errorf("%s Catalog: %w", op, err)
	}

	sessionCfg, err := envconfig.NewSessionConfig()
	if err != nil {
		return fmt.Errorf("%s Session: %w", op, err)
	}

	wizardCfg, err := envconfig.NewWizardConfig()
	if err != nil {
		return fmt.Errorf("%s Wizard: %w", op, err)
	}

	settingsCfg, err := envconfig.NewSettingsConfig()
	if err != nil {
		return fmt.Errorf("%s Settings: %w", op, err)
	}

	mongoCfg, err := envconfig.NewMongoConfig()
	if err != nil {
		return fmt.Errorf("%s Mongo: %w", op, err)
	}

	redisCfg, err := envconfig.NewRedisConfig()
	if err != nil {
		return fmt.Errorf("%s Redis: %w", op, err)
	}

	postgresCfg, err := envconfig.NewPostgresConfig()
	if err != nil {
		return fmt.Errorf("%s Postgres: %w", op, err)
	}

	geminiCfg, err := envconfig.NewGeminiConfig()
	if err != nil {
		return fmt.Errorf("%s Gemini: %w", op, err)
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}

	cfg = &config{
		Server:   serverCfg,
		Logger:   loggerCfg,
		Catalog:  catalogCfg,
		Session:  sessionCfg,
		Wizard:   wizardCfg,
		Settings: settingsCfg,
		Mongo:    mongoCfg,
		Redis:    redisCfg,
		Postgres: postgresCfg,
		Gemini:   geminiCfg,
		Kafka:    kafkaCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
