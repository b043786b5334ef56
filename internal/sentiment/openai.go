package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/spacesedan/smartnotes/internal/clients"
	"github.com/spacesedan/smartnotes/internal/models"
	"github.com/spacesedan/smartnotes/internal/utils"
)

const openAIBatchSize = 25

const sentimentPrompt = `You label the sentiment of patient feedback from hospital experience surveys.
For every entry you receive, return exactly one result with:
- "index": the index you were given
- "label": one of POSITIVE, NEGATIVE, NEUTRAL
- "score": your confidence between 0 and 1

### STRICT OUTPUT FORMAT
Return only valid JSON, no markdown, no extra text:
{"results": [{"index": 0, "label": "POSITIVE", "score": 0.93}]}
`

type llmEntry struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

type llmResponse struct {
	Results []struct {
		Index int     `json:"index"`
		Label string  `json:"label"`
		Score float64 `json:"score"`
	} `json:"results"`
}

type OpenAIClassifier struct {
	client *clients.OpenAIClient
}

func NewOpenAIClassifier(client *clients.OpenAIClient) *OpenAIClassifier {
	return &OpenAIClassifier{client: client}
}

func (o *OpenAIClassifier) ClassifyBatch(ctx context.Context, texts []string) ([]models.SentimentResult, error) {
	entries := make([]llmEntry, len(texts))
	for i, text := range texts {
		entries[i] = llmEntry{Index: i, Text: text}
	}

	results := make([]models.SentimentResult, len(texts))
	for _, batch := range utils.Chunk(entries, openAIBatchSize) {
		payload, err := json.Marshal(batch)
		if err != nil {
			return nil, fmt.Errorf("[OpenAIClassifier] failed to marshal batch: %w", err)
		}

		completion, err := o.client.Client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(sentimentPrompt),
				openai.UserMessage(string(payload)),
			}),
			Model:       openai.F(openai.ChatModel(o.client.Model)),
			Temperature: openai.Float(0),
		})
		if err != nil {
			slog.Error("[OpenAIClassifier] OpenAI API call failed",
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("[OpenAIClassifier] completion failed: %w", err)
		}
		if len(completion.Choices) == 0 {
			return nil, fmt.Errorf("[OpenAIClassifier] empty completion")
		}

		if err := parseLLMResults(completion.Choices[0].Message.Content, batch, results); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (o *OpenAIClassifier) Close() error { return nil }

// parseLLMResults fills results for every entry in batch from a model reply.
func parseLLMResults(content string, batch []llmEntry, results []models.SentimentResult) error {
	var resp llmResponse
	if err := json.Unmarshal([]byte(cleanOpenAIResponse(content)), &resp); err != nil {
		slog.Warn("[OpenAIClassifier] Failed to parse JSON reply",
			slog.String("error", err.Error()))
		return fmt.Errorf("[OpenAIClassifier] invalid reply: %w", err)
	}

	want := make(map[int]bool, len(batch))
	for _, e := range batch {
		want[e.Index] = true
	}
	for _, r := range resp.Results {
		if !want[r.Index] {
			continue
		}
		results[r.Index] = models.SentimentResult{
			Label: NormalizeLabel(r.Label),
			Score: clampScore(r.Score),
		}
		delete(want, r.Index)
	}
	if len(want) > 0 {
		return fmt.Errorf("[OpenAIClassifier] reply is missing %d of %d entries", len(want), len(batch))
	}
	return nil
}

func cleanOpenAIResponse(response string) string {
	response = strings.TrimSpace(response)

	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	response = strings.ReplaceAll(response, "“", `"`) // Left curly quote
	response = strings.ReplaceAll(response, "”", `"`) // Right curly quote

	return strings.TrimSpace(response)
}
