package kafka

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
	"go.uber.org/zap"

	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName string
	ClusterID string
	Logger    Logger

	Brokers []string
}

type Option func(*Config)

func WithImageName(image string) Option {
	return func(c *Config) {
		c.ImageName = image
	}
}

func WithClusterID(id string) Option {
	return func(c *Config) {
		c.ClusterID = id
	}
}

func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// Container is a single-node KRaft broker.
type Container struct {
	container *tckafka.KafkaContainer
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := &Config{
		ImageName: "confluentinc/confluent-local:7.5.0",
		ClusterID: "skulab-test",
		Logger:    &logger.NoopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	container, err := tckafka.Run(ctx, cfg.ImageName, tckafka.WithClusterID(cfg.ClusterID))
	if err != nil {
		return nil, errors.Errorf("failed to start kafka container: %v", err)
	}

	if cfg.Brokers, err = container.Brokers(ctx); err != nil {
		if termErr := testcontainers.TerminateContainer(container); termErr != nil {
			cfg.Logger.Error(ctx, "failed to terminate kafka container", zap.Error(termErr))
		}
		return nil, errors.Errorf("failed to get kafka brokers: %v", err)
	}

	cfg.Logger.Info(ctx, "Kafka container started", zap.Strings("brokers", cfg.Brokers))

	return &Container{container: container, cfg: cfg}, nil
}

func (c *Container) Config() *Config {
	return c.cfg
}

// CreateTopic creates a single-partition topic. An existing topic is not an error.
func (c *Container) CreateTopic(topic string) error {
	admin, err := sarama.NewClusterAdmin(c.cfg.Brokers, sarama.NewConfig())
	if err != nil {
		return errors.Errorf("failed to create cluster admin: %v", err)
	}
	defer admin.Close() //nolint:errcheck

	err = admin.CreateTopic(topic, &sarama.TopicDetail{NumPartitions: 1, ReplicationFactor: 1}, false)
	if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
		return errors.Errorf("failed to create topic %s: %v", topic, err)
	}
	return nil
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate kafka container", zap.Error(err))
		return err
	}

	c.cfg.Logger.Info(ctx, "Kafka container terminated")

	return nil
}
