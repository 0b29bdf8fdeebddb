package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"

	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

const postgresPort = "5432/tcp"

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName string
	Database  string
	Username  string
	Password  string
	Logger    Logger

	Host string
	Port string
	DSN  string
}

type Option func(*Config)

func WithImageName(image string) Option {
	return func(c *Config) {
		c.ImageName = image
	}
}

func WithDatabase(database string) Option {
	return func(c *Config) {
		c.Database = database
	}
}

func WithAuth(username, password string) Option {
	return func(c *Config) {
		c.Username = username
		c.Password = password
	}
}

func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// Container is a throwaway PostgreSQL instance with a connection pool.
type Container struct {
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := &Config{
		ImageName: "postgres:17-alpine",
		Database:  "skulab",
		Username:  "skulab",
		Password:  "skulab",
		Logger:    &logger.NoopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	container, err := tcpostgres.Run(ctx, cfg.ImageName,
		tcpostgres.WithDatabase(cfg.Database),
		tcpostgres.WithUsername(cfg.Username),
		tcpostgres.WithPassword(cfg.Password),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, errors.Errorf("failed to start postgres container: %v", err)
	}

	success := false
	defer func() {
		if !success {
			if err := testcontainers.TerminateContainer(container); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate postgres container", zap.Error(err))
			}
		}
	}()

	if cfg.DSN, err = container.ConnectionString(ctx, "sslmode=disable"); err != nil {
		return nil, errors.Errorf("failed to get postgres connection string: %v", err)
	}
	if cfg.Host, err = container.Host(ctx); err != nil {
		return nil, errors.Errorf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		return nil, errors.Errorf("failed to get mapped port: %v", err)
	}
	cfg.Port = port.Port()

	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, errors.Errorf("failed to create postgres pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Errorf("failed to ping postgres: %v", err)
	}

	cfg.Logger.Info(ctx, "Postgres container started", zap.String("host", cfg.Host), zap.String("port", cfg.Port))
	success = true

	return &Container{container: container, pool: pool, cfg: cfg}, nil
}

func (c *Container) Pool() *pgxpool.Pool {
	return c.pool
}

func (c *Container) Config() *Config {
	return c.cfg
}

func (c *Container) Terminate(ctx context.Context) error {
	c.pool.Close()

	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate postgres container", zap.Error(err))
		return err
	}

	c.cfg.Logger.Info(ctx, "Postgres container terminated")

	return nil
}
