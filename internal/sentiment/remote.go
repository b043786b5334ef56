package sentiment

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/spacesedan/smartnotes/internal/models"
	"github.com/spacesedan/smartnotes/internal/utils"
)

const remoteBatchSize = 50

// BatchAnalyzer is the remote sentiment service, satisfied by
// *clients.HuggingFaceClient.
type BatchAnalyzer interface {
	GetBatchedSentimentAnalysis(ctx context.Context, input models.SentimentAnalysisBatchRequest) (models.SentimentAnalysisBatchResponse, error)
	HealthCheck(ctx context.Context) bool
}

type RemoteClassifier struct {
	analyzer  BatchAnalyzer
	batchSize int
}

func NewRemoteClassifier(analyzer BatchAnalyzer) *RemoteClassifier {
	return &RemoteClassifier{analyzer: analyzer, batchSize: remoteBatchSize}
}

// ClassifyBatch sends texts in fixed-size requests and reassembles the
// responses by content id, so the service may answer out of order.
func (r *RemoteClassifier) ClassifyBatch(ctx context.Context, texts []string) ([]models.SentimentResult, error) {
	requests := make(models.SentimentAnalysisBatchRequest, len(texts))
	for i, text := range texts {
		requests[i] = models.SentimentAnalysisRequest{ContentID: strconv.Itoa(i), Text: text}
	}

	results := make([]models.SentimentResult, len(texts))
	seen := make([]bool, len(texts))
	for _, batch := range utils.Chunk(requests, r.batchSize) {
		responses, err := r.analyzer.GetBatchedSentimentAnalysis(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("[RemoteClassifier] batch failed: %w", err)
		}
		for _, resp := range responses {
			idx, err := strconv.Atoi(resp.ContentID)
			if err != nil || idx < 0 || idx >= len(texts) {
				return nil, fmt.Errorf("[RemoteClassifier] unexpected content id %q", resp.ContentID)
			}
			results[idx] = fromRemote(resp)
			seen[idx] = true
		}
	}

	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("[RemoteClassifier] no result for input %d", i)
		}
	}
	return results, nil
}

func (r *RemoteClassifier) HealthCheck(ctx context.Context) bool {
	return r.analyzer.HealthCheck(ctx)
}

func (r *RemoteClassifier) Close() error { return nil }

func fromRemote(resp models.SentimentAnalysisResponse) models.SentimentResult {
	score := resp.Confidence
	if score == 0 {
		score = math.Abs(resp.SentimentScore)
	}
	return models.SentimentResult{
		Label: NormalizeLabel(resp.SentimentLabel),
		Score: clampScore(score),
	}
}
