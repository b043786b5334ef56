package kafka_client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/google/uuid"
	"github.com/spacesedan/smartnotes/config"
	"github.com/spacesedan/smartnotes/internal/clients/kafka_client/utils"
	"github.com/spacesedan/smartnotes/internal/models"
)

type FeedbackProducer struct {
	producer *kafka.Producer
	topic    string
}

func NewFeedbackProducer(cfg config.KafkaConfig) (*FeedbackProducer, error) {
	slog.Info("[KafkaClient] Initializing Kafka Producer...", slog.String("broker", cfg.Broker))

	p, err := kafka.NewProducer(ProducerConfigMap(cfg))
	if err != nil {
		return nil, fmt.Errorf("[KafkaClient] Failed to create producer: %w", err)
	}

	slog.Info("[KafkaClient] Kafka Producer initialized successfully")
	return &FeedbackProducer{producer: p, topic: topicOrDefault(cfg)}, nil
}

// NewSubmission stamps text with a fresh id and the current time.
func NewSubmission(text, source string) models.FeedbackSubmission {
	return models.FeedbackSubmission{
		SubmissionID: uuid.NewString(),
		Text:         text,
		Source:       source,
		SubmittedAt:  time.Now().UTC(),
	}
}

// PublishFeedback produces one submission keyed by its id and waits for the
// broker's delivery report.
func (p *FeedbackProducer) PublishFeedback(ctx context.Context, submission models.FeedbackSubmission) error {
	value, err := utils.SerializeToJSON(submission)
	if err != nil {
		return fmt.Errorf("[KafkaClient] failed to serialize submission: %w", err)
	}

	topic := p.topic
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(submission.SubmissionID),
		Value:          value,
	}

	deliveryChan := make(chan kafka.Event, 1)
	for i := 0; i < 3; i++ {
		err = p.producer.Produce(msg, deliveryChan)
		if err == nil {
			break
		}
		slog.Warn("[KafkaClient] Failed to produce message, retrying...",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
	}
	if err != nil {
		return fmt.Errorf("[KafkaClient] failed to produce message: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case ev := <-deliveryChan:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("[KafkaClient] unexpected delivery event: %v", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("[KafkaClient] delivery failed: %w", m.TopicPartition.Error)
		}
	}

	slog.Info("[KafkaClient] Published feedback submission",
		slog.String("topic", topic),
		slog.String("submission_id", submission.SubmissionID),
		slog.String("source", submission.Source))

	return nil
}

func (p *FeedbackProducer) Close() {
	slog.Info("[KafkaClient] Shutting down Kafka producer...")
	if remaining := p.producer.Flush(int(FLUSH_TIMEOUT / time.Millisecond)); remaining > 0 {
		slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
			slog.Int("remaining", remaining))
	}
	p.producer.Close()
	slog.Info("[KafkaClient] Kafka producer shut down")
}
