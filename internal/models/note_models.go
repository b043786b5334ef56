package models

import (
	"fmt"
	"strings"
)

type SmartNote struct {
	FeedbackID string          `json:"feedback_id"`
	Text       string          `json:"text"`
	Sentiment  SentimentResult `json:"sentiment"`
	Issue      IssueCategory   `json:"issue"`
}

func (n SmartNote) String() string {
	text := strings.Join(strings.Fields(n.Text), " ")
	return fmt.Sprintf("Feedback: %s | Sentiment: %s | Issue: %s", text, n.Sentiment.Label, n.Issue.Phrase())
}
