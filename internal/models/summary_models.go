package models

type IssueCount struct {
	Category IssueCategory `json:"category"`
	Count    int           `json:"count"`
}

// SummaryStats is the aggregate over one analysis run.
// IssueCounts holds every category in precedence order, including zero counts.
type SummaryStats struct {
	Total           int           `json:"total"`
	PositiveCount   int           `json:"positive_count"`
	NegativeCount   int           `json:"negative_count"`
	NegativePercent float64       `json:"negative_percent"`
	IssueCounts     []IssueCount  `json:"issue_counts"`
	TopIssue        IssueCategory `json:"top_issue"`
}

func (s SummaryStats) Count(category IssueCategory) int {
	for _, ic := range s.IssueCounts {
		if ic.Category == category {
			return ic.Count
		}
	}
	return 0
}

// AnalysisResult is everything one pipeline run produced, positionally aligned
// with Items.
type AnalysisResult struct {
	Items      []FeedbackItem    `json:"items"`
	Sentiments []SentimentResult `json:"sentiments"`
	Issues     []IssueCategory   `json:"issues"`
	Notes      []SmartNote       `json:"notes"`
	Keywords   []string          `json:"keywords"`
	Stats      SummaryStats      `json:"stats"`
}
