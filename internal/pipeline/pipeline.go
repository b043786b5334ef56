package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/spacesedan/smartnotes/internal/aggregate"
	"github.com/spacesedan/smartnotes/internal/issues"
	"github.com/spacesedan/smartnotes/internal/keywords"
	"github.com/spacesedan/smartnotes/internal/models"
	"github.com/spacesedan/smartnotes/internal/notes"
)

// SentimentClassifier labels a batch of texts. The result must have the same
// length and order as texts.
type SentimentClassifier interface {
	ClassifyBatch(ctx context.Context, texts []string) ([]models.SentimentResult, error)
}

type KeywordExtractor interface {
	Extract(texts []string, topK int) []string
}

// ErrClassifierMismatch means the classifier returned a different number of
// results than it was given texts.
var ErrClassifierMismatch = errors.New("classifier returned a misaligned batch")

type Pipeline struct {
	classifier SentimentClassifier
	extractor  KeywordExtractor
	topK       int
}

type Option func(*Pipeline)

func WithTopK(k int) Option {
	return func(p *Pipeline) {
		if k > 0 {
			p.topK = k
		}
	}
}

func New(classifier SentimentClassifier, extractor KeywordExtractor, opts ...Option) *Pipeline {
	p := &Pipeline{
		classifier: classifier,
		extractor:  extractor,
		topK:       keywords.DefaultTopK,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run analyzes the whole collection. Classifier failures abort the run with no
// result. If only aggregation fails, the partial result (sentiments, issues,
// notes, keywords) is returned together with the error.
func (p *Pipeline) Run(ctx context.Context, items []models.FeedbackItem) (*models.AnalysisResult, error) {
	texts := models.FeedbackTexts(items)

	sentiments, err := p.classify(ctx, texts)
	if err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{
		Items:      items,
		Sentiments: sentiments,
		Issues:     issues.ClassifyAll(texts),
	}

	if p.extractor != nil {
		result.Keywords = p.extractor.Extract(texts, p.topK)
	}

	result.Notes, err = notes.SynthesizeAll(items, result.Sentiments, result.Issues)
	if err != nil {
		return result, err
	}

	result.Stats, err = aggregate.Aggregate(items, result.Sentiments, result.Issues)
	if err != nil {
		return result, fmt.Errorf("[Pipeline] aggregation failed: %w", err)
	}
	return result, nil
}

// Analyze classifies a single text without aggregating it.
func (p *Pipeline) Analyze(ctx context.Context, text string) (models.SmartNote, error) {
	sentiments, err := p.classify(ctx, []string{text})
	if err != nil {
		return models.SmartNote{}, err
	}
	return notes.Synthesize(models.FeedbackItem{Text: text}, sentiments[0], issues.Classify(text)), nil
}

func (p *Pipeline) classify(ctx context.Context, texts []string) ([]models.SentimentResult, error) {
	if len(texts) == 0 {
		return []models.SentimentResult{}, nil
	}

	sentiments, err := p.classifier.ClassifyBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("[Pipeline] sentiment classification failed: %w", err)
	}
	if len(sentiments) != len(texts) {
		return nil, fmt.Errorf("%w: sent %d texts, got %d results",
			ErrClassifierMismatch, len(texts), len(sentiments))
	}
	return sentiments, nil
}
