package models

import "time"

// FeedbackSubmission is the payload published to the feedback topic.
type FeedbackSubmission struct {
	SubmissionID string    `json:"submission_id"`
	Text         string    `json:"text"`
	Source       string    `json:"source"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
