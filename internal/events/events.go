// Package events publishes domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=events

// KafkaWriter abstracts Kafka writer
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher sends events without retries. Failures are logged and never returned.
type Publisher struct {
	writer KafkaWriter
}

// NewPublisher creates a publisher. A nil writer disables publishing.
func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer}
}

// NewKafkaWriter builds a writer for the topic, or returns nil when no brokers are given.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// Publish fills in the id and timestamp when missing and writes the event keyed by id.
func (p *Publisher) Publish(ctx context.Context, evt models.Event) {
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	if evt.Timestamp == 0 {
		evt.Timestamp = time.Now().Unix()
	}

	log := logger.FromContext(ctx)

	if p == nil || p.writer == nil {
		log.Warnw("Kafka writer not configured, skipping publishing", "event_id", evt.ID, "type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		log.Errorw("Failed to marshal event for Kafka", "event_id", evt.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.ID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish event to Kafka", "event_id", evt.ID, "type", evt.Type, "error", err)
	} else {
		log.Infow("Event published to Kafka", "event_id", evt.ID, "type", evt.Type)
	}
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
