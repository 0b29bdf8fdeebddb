package consumer

import (
	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka"
)

// groupHandler adapts a kafka.MessageHandler to sarama.ConsumerGroupHandler.
type groupHandler struct {
	handler kafka.MessageHandler
	logger  Logger
}

func NewGroupHandler(handler kafka.MessageHandler, logger Logger, middlewares ...kafka.Middleware) *groupHandler {
	return &groupHandler{
		handler: kafka.Chain(handler, middlewares...),
		logger:  logger,
	}
}

func (g *groupHandler) Setup(session sarama.ConsumerGroupSession) error {
	for topic, partitions := range session.Claims() {
		g.logger.Info(session.Context(), "Kafka partitions assigned",
			zap.String("topic", topic),
			zap.Int32s("partitions", partitions),
			zap.Int32("generation", session.GenerationID()),
		)
	}
	return nil
}

func (g *groupHandler) Cleanup(session sarama.ConsumerGroupSession) error {
	g.logger.Info(session.Context(), "Kafka partitions released",
		zap.String("member", session.MemberID()),
	)
	return nil
}

func (g *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				g.logger.Info(session.Context(), "Kafka message channel closed")
				return nil
			}

			// A failed message stays unmarked; the committed offset only
			// moves past it once a later message on the partition succeeds.
			if err := g.handler(session.Context(), toMessage(message)); err != nil {
				g.logger.Error(session.Context(), "Kafka handler error",
					zap.String("topic", message.Topic),
					zap.Int32("partition", message.Partition),
					zap.Int64("offset", message.Offset),
					zap.Error(err),
				)
				continue
			}

			session.MarkMessage(message, "")

		case <-session.Context().Done():
			g.logger.Info(session.Context(), "Kafka session context done")
			return nil
		}
	}
}

func toMessage(m *sarama.ConsumerMessage) kafka.Message {
	return kafka.Message{
		Key:       m.Key,
		Value:     m.Value,
		Topic:     m.Topic,
		Partition: m.Partition,
		Offset:    m.Offset,
		Timestamp: m.Timestamp,
		Headers:   extractHeaders(m.Headers),
	}
}

func extractHeaders(headers []*sarama.RecordHeader) map[string][]byte {
	result := make(map[string][]byte, len(headers))
	for _, h := range headers {
		if h != nil && h.Key != nil {
			result[string(h.Key)] = h.Value
		}
	}

	return result
}
