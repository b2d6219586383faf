// Package kafka relays outbox messages to Kafka.
package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"requisitions/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var _ ports.MessagePublisher = (*Publisher)(nil)

// Publisher writes outbox messages with a kafka-go Writer. The topic comes from
// each message, and messages of one order share a key so they stay ordered
// within a partition.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher connects to the comma separated broker list.
func NewPublisher(brokersCSV string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(SplitBrokers(brokersCSV)...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           50 * time.Millisecond,
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}
	if err := p.writer.WriteMessages(ctx, toKafkaMessages(messages)...); err != nil {
		return fmt.Errorf("write %d messages to kafka: %w", len(messages), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toKafkaMessages(messages []ports.OutboxMessage) []kafka.Message {
	out := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, kafka.Message{
			Topic: m.Topic,
			Key:   []byte(m.Key),
			Value: m.Payload,
			Time:  m.CreatedAt.UTC(),
			Headers: []kafka.Header{
				{Key: "message-id", Value: []byte(m.ID.String())},
			},
		})
	}
	return out
}

// SplitBrokers parses "host1:9092, host2:9092". Blank entries are dropped.
func SplitBrokers(brokersCSV string) []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// LogPublisher stands in for Kafka when no broker is configured: messages are
// logged and then considered delivered.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	for _, m := range messages {
		p.logger.InfoContext(ctx, "outbox message dropped, kafka is disabled",
			"message_id", m.ID.String(),
			"topic", m.Topic,
			"key", m.Key,
		)
	}
	return nil
}
