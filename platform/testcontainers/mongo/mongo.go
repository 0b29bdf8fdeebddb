package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

const (
	mongoPort           = "27017/tcp"
	mongoStartupTimeout = 1 * time.Minute

	mongoEnvUsernameKey = "MONGO_INITDB_ROOT_USERNAME"
	mongoEnvPasswordKey = "MONGO_INITDB_ROOT_PASSWORD" //nolint:gosec
)

// Container is a throwaway MongoDB instance with a connected client.
type Container struct {
	container testcontainers.Container
	client    *mongo.Client
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:  cfg.ContainerName,
			Image: cfg.ImageName,
			Env: map[string]string{
				mongoEnvUsernameKey:     cfg.Username,
				mongoEnvPasswordKey:     cfg.Password,
				"MONGO_INITDB_DATABASE": cfg.Database,
			},
			ExposedPorts: []string{mongoPort},
			WaitingFor:   wait.ForListeningPort(mongoPort).WithStartupTimeout(mongoStartupTimeout),
		},
		Started: true,
	})
	if err != nil {
		return nil, errors.Errorf("failed to start mongo container: %v", err)
	}

	success := false
	defer func() {
		if !success {
			if err := container.Terminate(ctx); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate mongo container", zap.Error(err))
			}
		}
	}()

	if cfg.Host, err = container.Host(ctx); err != nil {
		return nil, errors.Errorf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, mongoPort)
	if err != nil {
		return nil, errors.Errorf("failed to get mapped port: %v", err)
	}
	cfg.Port = port.Port()

	uri := fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.AuthDB,
	)

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Errorf("failed to connect to mongo: %v", err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Errorf("failed to ping mongo: %v", err)
	}

	cfg.Logger.Info(ctx, "Mongo container started", zap.String("host", cfg.Host), zap.String("port", cfg.Port))
	success = true

	return &Container{
		container: container,
		client:    client,
		cfg:       cfg,
	}, nil
}

func (c *Container) Client() *mongo.Client {
	return c.client
}

// Database is the database named in the config.
func (c *Container) Database() *mongo.Database {
	return c.client.Database(c.cfg.Database)
}

func (c *Container) Config() *Config {
	return c.cfg
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to disconnect mongo client", zap.Error(err))
	}

	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate mongo container", zap.Error(err))
		return err
	}

	c.cfg.Logger.Info(ctx, "Mongo container terminated")

	return nil
}
