package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/smartnotes/config"
	"github.com/spacesedan/smartnotes/internal/clients"
	"github.com/spacesedan/smartnotes/internal/models"
)

const (
	BackendVader       = "vader"
	BackendHugot       = "hugot"
	BackendHuggingFace = "huggingface"
	BackendOpenAI      = "openai"
)

var ErrUnknownBackend = errors.New("unknown sentiment backend")

// Classifier is a sentiment backend that may hold resources (model sessions).
type Classifier interface {
	ClassifyBatch(ctx context.Context, texts []string) ([]models.SentimentResult, error)
	Close() error
}

// HealthChecker is implemented by backends that depend on a remote service.
type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

func NewFromConfig(cfg config.Config) (Classifier, error) {
	slog.Info("[Sentiment] Selecting backend", slog.String("backend", cfg.SentimentBackend))

	switch cfg.SentimentBackend {
	case BackendVader, "":
		return NewVaderClassifier(), nil
	case BackendHugot:
		return NewHugotClassifier(cfg.HugotModel, cfg.HugotModelDir)
	case BackendHuggingFace:
		timeout := 60 * time.Second
		if cfg.AppEnv == "production" {
			timeout = 10 * time.Second
		}
		client := clients.NewHuggingFaceClient(cfg.HFEndpoint, cfg.HFHealthEndpoint, cfg.HFToken, timeout)
		return NewRemoteClassifier(client), nil
	case BackendOpenAI:
		client, err := clients.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			return nil, err
		}
		return NewOpenAIClassifier(client), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.SentimentBackend)
	}
}
