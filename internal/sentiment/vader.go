package sentiment

import (
	"context"
	"html"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/smartnotes/internal/models"
)

// compound scores within this distance of zero are labeled neutral
const vaderThreshold = 0.20

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText flattens survey text that was pasted with markdown
// formatting into a single plain line.
func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := tagPattern.ReplaceAllString(string(output), " ")
	return strings.Join(strings.Fields(html.UnescapeString(plain)), " ")
}

// VaderClassifier is the offline, rule-based backend.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderClassifier) ClassifyBatch(ctx context.Context, texts []string) ([]models.SentimentResult, error) {
	results := make([]models.SentimentResult, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results[i] = v.Analyze(text)
	}
	return results, nil
}

func (v *VaderClassifier) Analyze(text string) models.SentimentResult {
	compound := v.analyzer.PolarityScores(ConvertMarkdownToText(text)).Compound
	return LabelCompound(compound)
}

func (v *VaderClassifier) Close() error { return nil }

// LabelCompound turns a VADER compound score in [-1, 1] into a label and a
// confidence in [0, 1].
func LabelCompound(compound float64) models.SentimentResult {
	magnitude := math.Min(math.Abs(compound), 1)
	switch {
	case compound >= vaderThreshold:
		return models.SentimentResult{Label: models.LabelPositive, Score: magnitude}
	case compound <= -vaderThreshold:
		return models.SentimentResult{Label: models.LabelNegative, Score: magnitude}
	default:
		return models.SentimentResult{Label: models.LabelNeutral, Score: 1 - magnitude}
	}
}
