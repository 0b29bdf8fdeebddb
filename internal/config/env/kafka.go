package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled                    bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers                    []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	BatchListedTopicName       string   `env:"BATCH_LISTED_TOPIC_NAME" envDefault:"catalog.batch_listed"`
	BatchListedConsumerGroupID string   `env:"BATCH_LISTED_CONSUMER_GROUP_ID" envDefault:"skulab-catalog"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool            { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string        { return cfg.raw.Brokers }
func (cfg *kafka) BatchListedTopic() string { return cfg.raw.BatchListedTopicName }
func (cfg *kafka) BatchListedConsumerGroupID() string {
	return cfg.raw.BatchListedConsumerGroupID
}

func (cfg *kafka) BatchListedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

func (cfg *kafka) BatchListedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	return config
}
