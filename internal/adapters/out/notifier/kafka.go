// Package notifier provides outbound notification adapters. Notifications are
// fire-and-forget: they run after the business transaction committed, and a
// publish failure is logged rather than surfaced, so a flaky broker can never
// roll back or fail a committed operation.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// envelope is the wire format published to the notifications topic.
type envelope struct {
	Event      string    `json:"event"`
	PartyID    string    `json:"party_id"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaNotifier publishes notification envelopes to a Kafka topic, keyed by
// the receiving party so one party's notifications stay ordered.
type KafkaNotifier struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaNotifier creates a notifier writing to the given broker and topic.
func NewKafkaNotifier(host, topic string, logger *slog.Logger) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(host),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	return &KafkaNotifier{
		writer: writer,
		logger: logger,
	}
}

// Notify publishes one envelope. At-most-once: an error is logged and
// returned, but callers are expected to move on rather than retry.
func (n *KafkaNotifier) Notify(ctx context.Context, partyID kernel.UUID, event string, payload any) error {
	body, err := json.Marshal(envelope{
		Event:      event,
		PartyID:    partyID.String(),
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		n.logger.Error("notification marshal failed", "event", event, "error", err)
		return err
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(partyID.String()),
		Value: body,
	})
	if err != nil {
		n.logger.Error("notification publish failed",
			"event", event, "party_id", partyID.String(), "error", err)
		return err
	}

	return nil
}

// Close releases the underlying writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
