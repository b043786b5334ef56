package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/smartnotes/internal/clients"
	"github.com/spacesedan/smartnotes/internal/models"
	"github.com/valkey-io/valkey-go"
)

const valkeyRetries = 3

// ValkeyStore keeps feedback as JSON entries in a single Valkey list.
type ValkeyStore struct {
	client *clients.ValkeyClient
	key    string
}

func NewValkeyStore(client *clients.ValkeyClient, key string) *ValkeyStore {
	return &ValkeyStore{client: client, key: key}
}

func (s *ValkeyStore) Append(ctx context.Context, text string) (models.FeedbackItem, error) {
	text, err := normalizeText(text)
	if err != nil {
		return models.FeedbackItem{}, err
	}

	item := models.FeedbackItem{
		ID:          uuid.NewString(),
		Text:        text,
		SubmittedAt: time.Now().UTC().Truncate(time.Second),
	}
	payload, err := json.Marshal(item)
	if err != nil {
		return models.FeedbackItem{}, fmt.Errorf("[ValkeyStore] failed to marshal feedback: %w", err)
	}

	res := s.client.DoWithRetry(ctx, func(c valkey.Client) valkey.Completed {
		return c.B().Rpush().Key(s.key).Element(string(payload)).Build()
	}, valkeyRetries)
	if err := res.Error(); err != nil {
		return models.FeedbackItem{}, fmt.Errorf("[ValkeyStore] failed to push feedback: %w", err)
	}

	slog.Debug("[ValkeyStore] Appended feedback",
		slog.String("key", s.key),
		slog.String("id", item.ID))
	return item, nil
}

func (s *ValkeyStore) List(ctx context.Context) ([]models.FeedbackItem, error) {
	res := s.client.DoWithRetry(ctx, func(c valkey.Client) valkey.Completed {
		return c.B().Lrange().Key(s.key).Start(0).Stop(-1).Build()
	}, valkeyRetries)

	entries, err := res.AsStrSlice()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("[ValkeyStore] failed to read feedback: %w", err)
	}
	return decodeEntries(entries)
}

func (s *ValkeyStore) Close() error {
	s.client.Close()
	return nil
}

func decodeEntries(entries []string) ([]models.FeedbackItem, error) {
	items := make([]models.FeedbackItem, 0, len(entries))
	for i, entry := range entries {
		var item models.FeedbackItem
		if err := json.Unmarshal([]byte(entry), &item); err != nil {
			return nil, fmt.Errorf("[ValkeyStore] corrupt entry %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
