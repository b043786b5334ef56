package main

import (
	"fmt"
	"log/slog"

	"github.com/spacesedan/smartnotes/config"
	"github.com/spacesedan/smartnotes/internal/keywords"
	"github.com/spacesedan/smartnotes/internal/pipeline"
	"github.com/spacesedan/smartnotes/internal/sentiment"
)

func newExtractor(cfg config.Config) (*keywords.Extractor, error) {
	if cfg.StopWordsFile == "" {
		return keywords.NewEnglishExtractor(), nil
	}
	stopWords, err := keywords.LoadStopWords(cfg.StopWordsFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("[CLI] Loaded stop words",
		slog.String("file", cfg.StopWordsFile),
		slog.Int("count", len(stopWords)))
	return keywords.NewExtractor(stopWords), nil
}

// newPipeline wires the configured sentiment backend into a pipeline. The
// caller owns the returned classifier and must Close it.
func newPipeline(cfg config.Config) (*pipeline.Pipeline, sentiment.Classifier, error) {
	extractor, err := newExtractor(cfg)
	if err != nil {
		return nil, nil, err
	}

	classifier, err := sentiment.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("[CLI] failed to create sentiment classifier: %w", err)
	}

	return pipeline.New(classifier, extractor, pipeline.WithTopK(cfg.KeywordTopK)), classifier, nil
}
