package redis

import (
	"context"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/zap"

	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

const redisPort = "6379/tcp"

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName string
	Logger    Logger

	Host string
	Port string
}

type Option func(*Config)

func WithImageName(image string) Option {
	return func(c *Config) {
		c.ImageName = image
	}
}

func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// Container is a throwaway Redis instance with a connected client.
type Container struct {
	container *tcredis.RedisContainer
	client    *goredis.Client
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := &Config{
		ImageName: "redis:7.4-alpine",
		Logger:    &logger.NoopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	container, err := tcredis.Run(ctx, cfg.ImageName)
	if err != nil {
		return nil, errors.Errorf("failed to start redis container: %v", err)
	}

	success := false
	defer func() {
		if !success {
			if err := testcontainers.TerminateContainer(container); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate redis container", zap.Error(err))
			}
		}
	}()

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		return nil, errors.Errorf("failed to get redis connection string: %v", err)
	}

	if cfg.Host, err = container.Host(ctx); err != nil {
		return nil, errors.Errorf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, redisPort)
	if err != nil {
		return nil, errors.Errorf("failed to get mapped port: %v", err)
	}
	cfg.Port = port.Port()

	redisOpts, err := goredis.ParseURL(uri)
	if err != nil {
		return nil, errors.Errorf("failed to parse redis uri: %v", err)
	}
	client := goredis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Errorf("failed to ping redis: %v", err)
	}

	cfg.Logger.Info(ctx, "Redis container started", zap.String("uri", uri))
	success = true

	return &Container{container: container, client: client, cfg: cfg}, nil
}

func (c *Container) Client() *goredis.Client {
	return c.client
}

func (c *Container) Config() *Config {
	return c.cfg
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.client.Close(); err != nil {
		c.cfg.Logger.Error(ctx, "failed to close redis client", zap.Error(err))
	}

	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate redis container", zap.Error(err))
		return err
	}

	c.cfg.Logger.Info(ctx, "Redis container terminated")

	return nil
}
