// Package events publishes committed mutations to Kafka.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-reviews/internal/logger"
	"github.com/sbilibin2017/gw-movie-reviews/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=mock_publisher.go -package=events

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher sends mutation events. A Publisher without a writer drops events.
type Publisher struct {
	writer KafkaWriter
}

// NewPublisher creates a Publisher on top of writer, which may be nil.
func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer}
}

// NewKafkaWriter returns a writer for topic, or nil when no brokers are configured.
func NewKafkaWriter(brokers []string, topic string) KafkaWriter {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// Publish sends an event of the given type. Failures are logged, not returned:
// the mutation the event describes has already been committed.
func (p *Publisher) Publish(ctx context.Context, eventType string, entityID, userID int64) {
	log := logger.FromContext(ctx)

	evt := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		UserID:    userID,
		Timestamp: time.Now().Unix(),
	}

	if p.writer == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(entityID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
		return
	}
	log.Infow("Event published to Kafka", "event_id", evt.EventID, "type", evt.Type, "entity_id", entityID)
}

// Close closes the underlying writer, if any.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
