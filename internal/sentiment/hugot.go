package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/spacesedan/smartnotes/internal/models"
)

// HugotClassifier runs a local ONNX text-classification model (by default a
// DistilBERT fine-tuned on SST-2, which emits POSITIVE/NEGATIVE).
type HugotClassifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func NewHugotClassifier(modelName, modelDir string) (*HugotClassifier, error) {
	modelPath, err := ensureModel(modelName, modelDir)
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		slog.Error("[HugotClassifier] Failed to initialize Hugot session",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("[HugotClassifier] failed to create session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "patientFeedbackSentiment",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		_ = session.Destroy()
		slog.Error("[HugotClassifier] Failed to initialize pipeline",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("[HugotClassifier] failed to create pipeline: %w", err)
	}

	slog.Info("[HugotClassifier] Pipeline ready", slog.String("model", modelPath))
	return &HugotClassifier{session: session, pipeline: pipeline}, nil
}

func ensureModel(modelName, modelDir string) (string, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("[HugotClassifier] failed to create model directory: %w", err)
	}

	modelPath := filepath.Join(modelDir, strings.ReplaceAll(modelName, "/", "_"))
	if _, err := os.Stat(modelPath); err == nil {
		slog.Info("[HugotClassifier] Using existing model", slog.String("path", modelPath))
		return modelPath, nil
	}

	slog.Info("[HugotClassifier] Model not found, downloading...", slog.String("model", modelName))
	downloaded, err := hugot.DownloadModel(modelName, modelDir, hugot.NewDownloadOptions())
	if err != nil {
		slog.Error("[HugotClassifier] Failed to download model",
			slog.String("error", err.Error()))
		return "", fmt.Errorf("[HugotClassifier] failed to download %s: %w", modelName, err)
	}
	slog.Info("[HugotClassifier] Model downloaded successfully", slog.String("path", downloaded))
	return downloaded, nil
}

func (h *HugotClassifier) ClassifyBatch(ctx context.Context, texts []string) ([]models.SentimentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	output, err := h.pipeline.RunPipeline(texts)
	if err != nil {
		return nil, fmt.Errorf("[HugotClassifier] pipeline run failed: %w", err)
	}
	return fromClassificationOutputs(output.ClassificationOutputs)
}

func (h *HugotClassifier) Close() error {
	if h.session == nil {
		return nil
	}
	return h.session.Destroy()
}

// fromClassificationOutputs keeps the highest scoring label for every input.
func fromClassificationOutputs(outputs [][]pipelines.ClassificationOutput) ([]models.SentimentResult, error) {
	results := make([]models.SentimentResult, len(outputs))
	for i, candidates := range outputs {
		if len(candidates) == 0 {
			return nil, fmt.Errorf("[HugotClassifier] no label for input %d", i)
		}
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.Score > best.Score {
				best = c
			}
		}
		results[i] = models.SentimentResult{
			Label: NormalizeLabel(best.Label),
			Score: clampScore(float64(best.Score)),
		}
	}
	return results, nil
}
