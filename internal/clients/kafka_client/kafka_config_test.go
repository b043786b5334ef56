package kafka_client

import (
	"context"
	"testing"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/smartnotes/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumerConfigMap_DisablesAutoCommit(t *testing.T) {
	cm := ConsumerConfigMap(config.KafkaConfig{Broker: "broker:9092", GroupID: "ingest"})

	broker, err := cm.Get("bootstrap.servers", nil)
	require.NoError(t, err)
	assert.Equal(t, "broker:9092", broker)

	group, err := cm.Get("group.id", nil)
	require.NoError(t, err)
	assert.Equal(t, "ingest", group)

	autoCommit, err := cm.Get("enable.auto.commit", nil)
	require.NoError(t, err)
	assert.Equal(t, false, autoCommit)
}

func TestProducerConfigMap_IsIdempotent(t *testing.T) {
	cm := ProducerConfigMap(config.KafkaConfig{Broker: "broker:9092"})

	idempotent, err := cm.Get("enable.idempotence", nil)
	require.NoError(t, err)
	assert.Equal(t, true, idempotent)

	acks, err := cm.Get("acks", nil)
	require.NoError(t, err)
	assert.Equal(t, "all", acks)
}

func TestTopicOrDefault(t *testing.T) {
	assert.Equal(t, KAFKA_TOPIC_PATIENT_FEEDBACK, topicOrDefault(config.KafkaConfig{}))
	assert.Equal(t, "custom", topicOrDefault(config.KafkaConfig{Topic: "custom"}))
}

func TestNewSubmission(t *testing.T) {
	s := NewSubmission("Clean rooms", "kiosk")

	assert.NotEmpty(t, s.SubmissionID)
	assert.Equal(t, "Clean rooms", s.Text)
	assert.Equal(t, "kiosk", s.Source)
	assert.False(t, s.SubmittedAt.IsZero())
}

func TestConsumerRegistry(t *testing.T) {
	t.Cleanup(func() { delete(consumerRegistry, "registry-test") })

	_, err := lookupConsumer("registry-test")
	require.Error(t, err)

	called := false
	RegisterConsumer("registry-test", func(context.Context, *kafka.Consumer) { called = true })

	fn, err := lookupConsumer("registry-test")
	require.NoError(t, err)
	fn(context.Background(), nil)
	assert.True(t, called)
}

func TestCommitHandler_RequiresConsumer(t *testing.T) {
	ch := NewCommitHandler(context.Background(), nil)
	assert.Error(t, ch.Commit(&kafka.Message{}))
}

func TestIterator_RequiresConsumer(t *testing.T) {
	it := NewKafkaMessageIterator(context.Background(), nil)
	_, err := it.Next()
	assert.Error(t, err)
}
