package models

import "time"

// FeedbackItem is a single piece of patient feedback as it sits in the store.
type FeedbackItem struct {
	ID          string    `json:"id" dynamodbav:"id"`
	Text        string    `json:"text" dynamodbav:"text"`
	SubmittedAt time.Time `json:"submitted_at" dynamodbav:"submitted_at"`
}

// FeedbackTexts returns the raw texts in the same order as items.
func FeedbackTexts(items []FeedbackItem) []string {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	return texts
}
