package config

import (
	"time"

	"github.com/IBM/sarama"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
	AllowedOrigins() []string
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Catalog interface {
	Storage() string
	Bootstrap() bool
	FallbackBounds() model.Bounds
}

type Session interface {
	TTL() time.Duration
	JanitorInterval() time.Duration
	InterpretTimeout() time.Duration
}

type Wizard interface {
	DefaultCountry() string
	MaxImageBytes() int64
}

type Settings interface {
	Storage() string
}

type Mongo interface {
	DSN() string
	DatabaseName() string
	BatchesCollection() string
}

type Redis interface {
	Address() string
	Password() string
	DB() int
	SettingsTTL() time.Duration
}

type Database interface {
	DSN() string
}

type Gemini interface {
	APIKey() string
	FastModel() string
	ChatModel() string
	Temperature() float32
	Timeout() time.Duration
	ChatTimeout() time.Duration
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	BatchListedTopic() string
	BatchListedConsumerGroupID() string
	BatchListedConsumerConfig() *sarama.Config
	BatchListedProducerConfig() *sarama.Config
}
