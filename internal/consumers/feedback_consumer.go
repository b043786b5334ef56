package consumers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/smartnotes/internal/clients/kafka_client"
	kafkautils "github.com/spacesedan/smartnotes/internal/clients/kafka_client/utils"
	"github.com/spacesedan/smartnotes/internal/db"
	"github.com/spacesedan/smartnotes/internal/models"
	"github.com/spacesedan/smartnotes/internal/utils"
)

var ErrInvalidSubmission = errors.New("[FeedbackConsumer] invalid submission")

// pendingSubmission pairs a decoded submission with the message it came from
// so the offset can be committed once the batch is stored.
type pendingSubmission struct {
	submission models.FeedbackSubmission
	msg        *kafka.Message
}

// NewFeedbackConsumer returns a consumer loop that appends submissions to
// store in batches and commits offsets only after a batch is persisted.
func NewFeedbackConsumer(store db.FeedbackStore, batchSize int, flushEvery time.Duration) kafka_client.ConsumerFunc {
	return func(ctx context.Context, consumer *kafka.Consumer) {
		iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
		committer := kafka_client.NewCommitHandler(ctx, consumer)
		buffer := utils.NewBatchBuffer[pendingSubmission](batchSize)

		if flushEvery <= 0 {
			flushEvery = kafka_client.BATCH_TIMEOUT
		}
		ticker := time.NewTicker(flushEvery)
		defer ticker.Stop()

		flush := func(flushCtx context.Context) {
			if !buffer.HasData() {
				return
			}
			buffer.LogBatchProcessing("feedback")
			batch := buffer.GetAndClear()
			if err := flushBatch(flushCtx, store, batch, committer.Commit); err != nil {
				slog.Error("[FeedbackConsumer] Failed to store batch",
					slog.Int("batch_size", len(batch)),
					slog.String("error", err.Error()))
			}
		}

		for {
			select {
			case <-ctx.Done():
				// Give the final batch a short window to land before exiting.
				shutdownCtx, cancel := context.WithTimeout(context.Background(), kafka_client.FLUSH_TIMEOUT)
				flush(shutdownCtx)
				cancel()
				return
			case <-ticker.C:
				flush(ctx)
			default:
				msg, err := iterator.Next()
				if err != nil {
					kafkautils.HandleConsumerError(err)
					if ctx.Err() != nil {
						continue
					}
					var kafkaErr kafka.Error
					if errors.As(err, &kafkaErr) && kafkaErr.Code() == kafka.ErrAllBrokersDown {
						return
					}
					continue
				}
				if msg == nil {
					continue
				}

				submission, err := DecodeSubmission(msg.Value)
				if err != nil {
					slog.Warn("[FeedbackConsumer] Skipping message",
						slog.Int("partition", int(msg.TopicPartition.Partition)),
						slog.String("offset", msg.TopicPartition.Offset.String()),
						slog.String("error", err.Error()))
					continue
				}

				buffer.Add(pendingSubmission{submission: submission, msg: msg})
				if buffer.Full() {
					flush(ctx)
				}
			}
		}
	}
}

// DecodeSubmission parses a message payload and rejects blank feedback.
func DecodeSubmission(value []byte) (models.FeedbackSubmission, error) {
	var submission models.FeedbackSubmission
	if err := kafkautils.DeserializeFromJSON(value, &submission); err != nil {
		return models.FeedbackSubmission{}, fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
	}
	if strings.TrimSpace(submission.Text) == "" {
		return models.FeedbackSubmission{}, fmt.Errorf("%w: empty text", ErrInvalidSubmission)
	}
	return submission, nil
}

// flushBatch appends every submission in order and then commits the last
// message. Nothing is committed if an append fails, so the batch is
// redelivered on restart.
func flushBatch(
	ctx context.Context,
	store db.FeedbackStore,
	batch []pendingSubmission,
	commit func(*kafka.Message) error,
) error {
	if len(batch) == 0 {
		return nil
	}

	for i, p := range batch {
		item, err := store.Append(ctx, p.submission.Text)
		if err != nil {
			return fmt.Errorf("[FeedbackConsumer] append %d/%d (submission %s): %w",
				i+1, len(batch), p.submission.SubmissionID, err)
		}
		slog.Debug("[FeedbackConsumer] Stored feedback",
			slog.String("submission_id", p.submission.SubmissionID),
			slog.String("feedback_id", item.ID),
			slog.String("source", p.submission.Source))
	}

	last := batch[len(batch)-1].msg
	if last == nil {
		return nil
	}
	if err := commit(last); err != nil {
		return fmt.Errorf("[FeedbackConsumer] commit: %w", err)
	}

	slog.Info("[FeedbackConsumer] Stored feedback batch", slog.Int("count", len(batch)))
	return nil
}
