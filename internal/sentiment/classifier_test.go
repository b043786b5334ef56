package sentiment

import (
	"testing"

	"github.com/spacesedan/smartnotes/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfig(t *testing.T) {
	c, err := NewFromConfig(config.Config{SentimentBackend: BackendVader})
	require.NoError(t, err)
	assert.IsType(t, &VaderClassifier{}, c)

	c, err = NewFromConfig(config.Config{SentimentBackend: BackendHuggingFace, HFEndpoint: "http://localhost:1"})
	require.NoError(t, err)
	_, ok := c.(HealthChecker)
	assert.True(t, ok)

	_, err = NewFromConfig(config.Config{SentimentBackend: BackendOpenAI})
	assert.Error(t, err, "missing API key must fail")

	_, err = NewFromConfig(config.Config{SentimentBackend: "bert"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
