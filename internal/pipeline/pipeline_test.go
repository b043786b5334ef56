package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/spacesedan/smartnotes/internal/aggregate"
	"github.com/spacesedan/smartnotes/internal/keywords"
	"github.com/spacesedan/smartnotes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClassifier answers from a fixed text -> result table.
type stubClassifier struct {
	results map[string]models.SentimentResult
	err     error
	short   bool
	calls   int
	batches [][]string
}

func (s *stubClassifier) ClassifyBatch(_ context.Context, texts []string) ([]models.SentimentResult, error) {
	s.calls++
	s.batches = append(s.batches, texts)
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.SentimentResult, 0, len(texts))
	for _, text := range texts {
		r, ok := s.results[text]
		if !ok {
			r = models.SentimentResult{Label: models.LabelPositive, Score: 0.99}
		}
		out = append(out, r)
	}
	if s.short {
		out = out[:len(out)-1]
	}
	return out, nil
}

func items(texts ...string) []models.FeedbackItem {
	out := make([]models.FeedbackItem, len(texts))
	for i, text := range texts {
		out[i] = models.FeedbackItem{ID: text, Text: text}
	}
	return out
}

func TestRun_MixedScenario(t *testing.T) {
	classifier := &stubClassifier{results: map[string]models.SentimentResult{
		"The wait was too long": {Label: models.LabelNegative, Score: 0.9},
		"Very clean room":       {Label: models.LabelPositive, Score: 0.8},
		"Great service":         {Label: models.LabelPositive, Score: 0.95},
	}}
	p := New(classifier, keywords.NewEnglishExtractor())

	result, err := p.Run(context.Background(), items("The wait was too long", "Very clean room", "Great service"))
	require.NoError(t, err)

	assert.Equal(t, 1, classifier.calls, "classifier must be called once per batch")
	assert.Len(t, classifier.batches[0], 3)
	assert.Equal(t, []models.IssueCategory{models.IssueWaitingTime, models.IssueCleanliness, models.IssueGeneral}, result.Issues)
	assert.Equal(t, 33.3, result.Stats.NegativePercent)
	assert.Equal(t, models.IssueWaitingTime, result.Stats.TopIssue)
	require.Len(t, result.Notes, 3)
	assert.Equal(t, "Feedback: The wait was too long | Sentiment: NEGATIVE | Issue: Waiting Time Issue", result.Notes[0].String())
	assert.Contains(t, result.Keywords, "clean")
	assert.NotContains(t, result.Keywords, "the")
}

func TestRun_AllPositive(t *testing.T) {
	p := New(&stubClassifier{}, keywords.NewEnglishExtractor())

	result, err := p.Run(context.Background(), items("Great", "Kind nurses", "Good food", "Quick discharge", "Thank you"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Stats.NegativePercent)
	assert.Equal(t, 5, result.Stats.PositiveCount)
	assert.Equal(t, models.IssueGeneral, result.Stats.TopIssue)
}

func TestRun_Empty(t *testing.T) {
	classifier := &stubClassifier{}
	p := New(classifier, keywords.NewEnglishExtractor())

	result, err := p.Run(context.Background(), nil)
	assert.ErrorIs(t, err, aggregate.ErrEmptyInput)
	assert.Zero(t, classifier.calls)
	require.NotNil(t, result)
	assert.Empty(t, result.Notes)
}

func TestRun_ClassifierFailureIsFatal(t *testing.T) {
	boom := errors.New("model unavailable")
	p := New(&stubClassifier{err: boom}, keywords.NewEnglishExtractor())

	result, err := p.Run(context.Background(), items("The wait was too long"))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result)
}

func TestRun_ClassifierShortBatch(t *testing.T) {
	p := New(&stubClassifier{short: true}, nil)

	result, err := p.Run(context.Background(), items("a", "b"))
	assert.ErrorIs(t, err, ErrClassifierMismatch)
	assert.Nil(t, result)
}

func TestRun_TopK(t *testing.T) {
	p := New(&stubClassifier{}, keywords.NewEnglishExtractor(), WithTopK(2))

	result, err := p.Run(context.Background(), items("nurse nurse doctor doctor bed"))
	require.NoError(t, err)
	assert.Equal(t, []string{"doctor", "nurse"}, result.Keywords)
}

func TestAnalyze(t *testing.T) {
	classifier := &stubClassifier{results: map[string]models.SentimentResult{
		"Dirty and not clean": {Label: models.LabelNegative, Score: 0.97},
	}}
	p := New(classifier, nil)

	note, err := p.Analyze(context.Background(), "Dirty and not clean")
	require.NoError(t, err)
	assert.Equal(t, models.IssueCleanliness, note.Issue)
	assert.Equal(t, models.LabelNegative, note.Sentiment.Label)
	assert.InDelta(t, 0.97, note.Sentiment.Score, 1e-9)
}
