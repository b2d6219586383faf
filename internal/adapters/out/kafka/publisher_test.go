package kafka

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"kafka:9092", "kafka-2:9092"}, SplitBrokers(" kafka:9092, ,kafka-2:9092 "))
	assert.Empty(t, SplitBrokers(""))
}

func TestToKafkaMessages(t *testing.T) {
	created := time.Date(2026, 1, 5, 10, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	msg := ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		AggregateID: kernel.NewUUID(),
		Topic:       "requisitions.order-status",
		Key:         "order-1",
		Payload:     []byte(`{"status":"CREATED"}`),
		CreatedAt:   created,
	}

	out := toKafkaMessages([]ports.OutboxMessage{msg})

	require.Len(t, out, 1)
	assert.Equal(t, "requisitions.order-status", out[0].Topic)
	assert.Equal(t, []byte("order-1"), out[0].Key)
	assert.JSONEq(t, `{"status":"CREATED"}`, string(out[0].Value))
	assert.Equal(t, time.UTC, out[0].Time.Location())
	require.Len(t, out[0].Headers, 1)
	assert.Equal(t, msg.ID.String(), string(out[0].Headers[0].Value))
}

func TestPublisher_PublishNothing(t *testing.T) {
	p := NewPublisher("localhost:1")

	require.NoError(t, p.Publish(context.Background()))
	require.NoError(t, p.Close())
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	p := NewLogPublisher(logger)

	err := p.Publish(context.Background(), ports.OutboxMessage{ID: kernel.NewUUID(), Topic: "t", Key: "k"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "kafka is disabled")
	assert.Contains(t, buf.String(), `"topic":"t"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
}
