package aggregate

import (
	"fmt"
	"math"

	"github.com/spacesedan/smartnotes/internal/models"
)

// Aggregate summarizes one analysis run. items, sentiments and issues must be
// positionally aligned. An empty run fails with ErrEmptyInput.
func Aggregate(items []models.FeedbackItem, sentiments []models.SentimentResult, issues []models.IssueCategory) (models.SummaryStats, error) {
	if len(items) != len(sentiments) || len(items) != len(issues) {
		return models.SummaryStats{}, fmt.Errorf("%w: %d items, %d sentiments, %d issues",
			ErrInputMismatch, len(items), len(sentiments), len(issues))
	}

	total := len(items)
	if total == 0 {
		return models.SummaryStats{}, ErrEmptyInput
	}

	for i, issue := range issues {
		if !issue.Valid() {
			return models.SummaryStats{}, fmt.Errorf("%w: issue %d has unknown category %d",
				ErrInputMismatch, i, int(issue))
		}
	}

	var positive, negative int
	for _, s := range sentiments {
		switch {
		case s.IsPositive():
			positive++
		case s.IsNegative():
			negative++
		}
	}

	counts := CountIssues(issues)
	top, err := TopIssue(counts)
	if err != nil {
		return models.SummaryStats{}, err
	}

	return models.SummaryStats{
		Total:           total,
		PositiveCount:   positive,
		NegativeCount:   negative,
		NegativePercent: Percent(negative, total),
		IssueCounts:     counts,
		TopIssue:        top,
	}, nil
}

// CountIssues tallies issues into every known category, in precedence order.
// Unknown categories are not counted; Aggregate rejects them up front.
func CountIssues(issues []models.IssueCategory) []models.IssueCount {
	all := models.AllIssueCategories()
	counts := make([]models.IssueCount, len(all))
	for i, category := range all {
		counts[i].Category = category
	}
	for _, issue := range issues {
		if issue.Valid() {
			counts[issue].Count++
		}
	}
	return counts
}

// TopIssue returns the category with the highest count. Ties go to the category
// that comes first in precedence order.
func TopIssue(counts []models.IssueCount) (models.IssueCategory, error) {
	best := -1
	for i, ic := range counts {
		if ic.Count == 0 {
			continue
		}
		if best < 0 || ic.Count > counts[best].Count ||
			(ic.Count == counts[best].Count && ic.Category < counts[best].Category) {
			best = i
		}
	}
	if best < 0 {
		return 0, ErrEmptyInput
	}
	return counts[best].Category, nil
}

// Percent is part/total*100 rounded to one decimal place.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
