package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/spacesedan/smartnotes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	calls   int
	reverse bool
	drop    bool
	err     error
}

func (f *fakeAnalyzer) GetBatchedSentimentAnalysis(_ context.Context, input models.SentimentAnalysisBatchRequest) (models.SentimentAnalysisBatchResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make(models.SentimentAnalysisBatchResponse, 0, len(input))
	for _, req := range input {
		label := "positive"
		if req.Text == "bad" {
			label = "negative"
		}
		out = append(out, models.SentimentAnalysisResponse{ContentID: req.ContentID, SentimentLabel: label, SentimentScore: -0.4})
	}
	if f.reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	if f.drop {
		out = out[1:]
	}
	return out, nil
}

func (f *fakeAnalyzer) HealthCheck(context.Context) bool { return true }

func TestRemoteClassifierReordersByContentID(t *testing.T) {
	analyzer := &fakeAnalyzer{reverse: true}
	c := NewRemoteClassifier(analyzer)
	c.batchSize = 2

	results, err := c.ClassifyBatch(context.Background(), []string{"good", "bad", "good", "bad", "bad"})
	require.NoError(t, err)
	assert.Equal(t, 3, analyzer.calls)
	labels := make([]string, len(results))
	for i, r := range results {
		labels[i] = r.Label
	}
	assert.Equal(t, []string{"POSITIVE", "NEGATIVE", "POSITIVE", "NEGATIVE", "NEGATIVE"}, labels)
	assert.InDelta(t, 0.4, results[0].Score, 1e-9)
}

func TestRemoteClassifierMissingResult(t *testing.T) {
	c := NewRemoteClassifier(&fakeAnalyzer{drop: true})
	_, err := c.ClassifyBatch(context.Background(), []string{"good", "bad"})
	assert.ErrorContains(t, err, "no result for input 0")
}

func TestRemoteClassifierPropagatesErrors(t *testing.T) {
	boom := errors.New("503")
	c := NewRemoteClassifier(&fakeAnalyzer{err: boom})
	_, err := c.ClassifyBatch(context.Background(), []string{"good"})
	assert.ErrorIs(t, err, boom)
}
