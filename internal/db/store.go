package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spacesedan/smartnotes/config"
	"github.com/spacesedan/smartnotes/internal/clients"
	"github.com/spacesedan/smartnotes/internal/models"
)

var (
	ErrEmptyFeedback  = errors.New("feedback text is empty")
	ErrUnknownBackend = errors.New("unknown store backend")
)

// FeedbackStore is an append-only, ordered collection of feedback.
type FeedbackStore interface {
	Append(ctx context.Context, text string) (models.FeedbackItem, error)
	List(ctx context.Context) ([]models.FeedbackItem, error)
	Close() error
}

// Open builds the store selected by cfg.StoreBackend.
func Open(ctx context.Context, cfg config.Config) (FeedbackStore, error) {
	switch cfg.StoreBackend {
	case "csv", "":
		return NewCSVStore(cfg.CSVPath)
	case "sqlite":
		return NewSQLiteStore(cfg.SQLitePath)
	case "valkey":
		client, err := clients.NewValkeyClient(clients.ValkeyOptions{
			Address:  cfg.ValkeyAddr,
			Password: cfg.ValkeyPassword,
			UseTLS:   cfg.ValkeyTLS,
		})
		if err != nil {
			return nil, err
		}
		return NewValkeyStore(client, cfg.ValkeyKey), nil
	case "dynamodb":
		client, err := clients.NewDynamoDBClient(ctx, cfg.AWSRegion, cfg.AWSEndpoint)
		if err != nil {
			return nil, err
		}
		return NewDynamoDBStore(client, cfg.DynamoDBTable), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StoreBackend)
	}
}

func normalizeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyFeedback
	}
	return text, nil
}
