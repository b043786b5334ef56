package models

const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	LabelNeutral  = "NEUTRAL"
)

// SentimentResult is the label and confidence a classifier assigned to one text.
// Score is always within [0, 1].
type SentimentResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (s SentimentResult) IsPositive() bool { return s.Label == LabelPositive }
func (s SentimentResult) IsNegative() bool { return s.Label == LabelNegative }
