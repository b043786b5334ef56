package notes

import (
	"fmt"

	"github.com/spacesedan/smartnotes/internal/aggregate"
	"github.com/spacesedan/smartnotes/internal/models"
)

func Synthesize(item models.FeedbackItem, sentiment models.SentimentResult, issue models.IssueCategory) models.SmartNote {
	return models.SmartNote{
		FeedbackID: item.ID,
		Text:       item.Text,
		Sentiment:  sentiment,
		Issue:      issue,
	}
}

// SynthesizeAll builds one note per item. The three slices must be positionally aligned.
func SynthesizeAll(items []models.FeedbackItem, sentiments []models.SentimentResult, issues []models.IssueCategory) ([]models.SmartNote, error) {
	if len(items) != len(sentiments) || len(items) != len(issues) {
		return nil, fmt.Errorf("%w: %d items, %d sentiments, %d issues",
			aggregate.ErrInputMismatch, len(items), len(sentiments), len(issues))
	}

	notes := make([]models.SmartNote, len(items))
	for i := range items {
		notes[i] = Synthesize(items[i], sentiments[i], issues[i])
	}
	return notes, nil
}
