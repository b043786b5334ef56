package aggregate

import (
	"fmt"
	"testing"

	"github.com/spacesedan/smartnotes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedback(texts ...string) []models.FeedbackItem {
	items := make([]models.FeedbackItem, len(texts))
	for i, text := range texts {
		items[i] = models.FeedbackItem{ID: fmt.Sprintf("f-%d", i), Text: text}
	}
	return items
}

func positive(score float64) models.SentimentResult {
	return models.SentimentResult{Label: models.LabelPositive, Score: score}
}

func negative(score float64) models.SentimentResult {
	return models.SentimentResult{Label: models.LabelNegative, Score: score}
}

func TestAggregate_MixedScenario(t *testing.T) {
	items := feedback("The wait was too long", "Very clean room", "Great service")
	sentiments := []models.SentimentResult{negative(0.9), positive(0.8), positive(0.95)}
	issues := []models.IssueCategory{models.IssueWaitingTime, models.IssueCleanliness, models.IssueGeneral}

	stats, err := Aggregate(items, sentiments, issues)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.PositiveCount)
	assert.Equal(t, 1, stats.NegativeCount)
	assert.Equal(t, 33.3, stats.NegativePercent)
	assert.Equal(t, []models.IssueCount{
		{Category: models.IssueWaitingTime, Count: 1},
		{Category: models.IssueCleanliness, Count: 1},
		{Category: models.IssueGeneral, Count: 1},
	}, stats.IssueCounts)
	assert.Equal(t, models.IssueWaitingTime, stats.TopIssue)
}

func TestAggregate_AllPositive(t *testing.T) {
	items := feedback("Great", "Lovely nurses", "Friendly", "Helpful staff", "Thanks")
	sentiments := make([]models.SentimentResult, len(items))
	issues := make([]models.IssueCategory, len(items))
	for i := range items {
		sentiments[i] = positive(0.99)
		issues[i] = models.IssueGeneral
	}

	stats, err := Aggregate(items, sentiments, issues)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.NegativePercent)
	assert.Equal(t, 5, stats.PositiveCount)
	assert.Equal(t, models.IssueGeneral, stats.TopIssue)
	assert.Equal(t, 0, stats.Count(models.IssueWaitingTime))
	assert.Equal(t, 5, stats.Count(models.IssueGeneral))
}

func TestAggregate_Empty(t *testing.T) {
	_, err := Aggregate(nil, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Aggregate([]models.FeedbackItem{}, []models.SentimentResult{}, []models.IssueCategory{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAggregate_Mismatch(t *testing.T) {
	items := feedback("a", "b")

	tests := []struct {
		name       string
		sentiments []models.SentimentResult
		issues     []models.IssueCategory
	}{
		{"short sentiments", []models.SentimentResult{positive(1)}, []models.IssueCategory{models.IssueGeneral, models.IssueGeneral}},
		{"short issues", []models.SentimentResult{positive(1), positive(1)}, []models.IssueCategory{models.IssueGeneral}},
		{"long issues", []models.SentimentResult{positive(1), positive(1)}, []models.IssueCategory{0, 0, 0}},
		{"unknown issue category", []models.SentimentResult{positive(1), positive(1)}, []models.IssueCategory{models.IssueGeneral, models.IssueCategory(7)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Aggregate(items, tt.sentiments, tt.issues)
			assert.ErrorIs(t, err, ErrInputMismatch)
		})
	}
}

func TestAggregate_OtherLabelsAreNotCounted(t *testing.T) {
	items := feedback("a", "b", "c", "d")
	sentiments := []models.SentimentResult{
		positive(0.9),
		negative(0.9),
		{Label: models.LabelNeutral, Score: 0.5},
		{Label: "MIXED", Score: 0.4},
	}
	issues := []models.IssueCategory{models.IssueGeneral, models.IssueGeneral, models.IssueGeneral, models.IssueGeneral}

	stats, err := Aggregate(items, sentiments, issues)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PositiveCount)
	assert.Equal(t, 1, stats.NegativeCount)
	assert.LessOrEqual(t, stats.PositiveCount+stats.NegativeCount, stats.Total)
	assert.Equal(t, 25.0, stats.NegativePercent)
}

func TestAggregate_Idempotent(t *testing.T) {
	items := feedback("wait", "clean", "ok", "dirty, not clean")
	sentiments := []models.SentimentResult{negative(0.6), positive(0.7), positive(0.8), negative(0.9)}
	issues := []models.IssueCategory{models.IssueWaitingTime, models.IssueCleanliness, models.IssueGeneral, models.IssueCleanliness}

	first, err := Aggregate(items, sentiments, issues)
	require.NoError(t, err)
	second, err := Aggregate(items, sentiments, issues)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, models.IssueCleanliness, first.TopIssue)
}

func TestAggregate_CountsSumAndPercentBounds(t *testing.T) {
	categories := models.AllIssueCategories()
	for n := 1; n <= 12; n++ {
		items := make([]models.FeedbackItem, n)
		sentiments := make([]models.SentimentResult, n)
		issues := make([]models.IssueCategory, n)
		for i := 0; i < n; i++ {
			if i%3 == 0 {
				sentiments[i] = negative(0.5)
			} else {
				sentiments[i] = positive(0.5)
			}
			issues[i] = categories[(i*7)%len(categories)]
		}

		stats, err := Aggregate(items, sentiments, issues)
		require.NoError(t, err)

		sum := 0
		for _, ic := range stats.IssueCounts {
			sum += ic.Count
		}
		assert.Equal(t, stats.Total, sum, "n=%d", n)
		assert.GreaterOrEqual(t, stats.NegativePercent, 0.0)
		assert.LessOrEqual(t, stats.NegativePercent, 100.0)
	}
}

func TestTopIssue(t *testing.T) {
	tests := []struct {
		name     string
		counts   []models.IssueCount
		expected models.IssueCategory
	}{
		{
			name: "clear winner",
			counts: []models.IssueCount{
				{Category: models.IssueWaitingTime, Count: 1},
				{Category: models.IssueCleanliness, Count: 4},
				{Category: models.IssueGeneral, Count: 2},
			},
			expected: models.IssueCleanliness,
		},
		{
			name: "tie goes to precedence order, not slice order",
			counts: []models.IssueCount{
				{Category: models.IssueGeneral, Count: 3},
				{Category: models.IssueCleanliness, Count: 3},
			},
			expected: models.IssueCleanliness,
		},
		{
			name: "general beats an absent waiting time",
			counts: []models.IssueCount{
				{Category: models.IssueWaitingTime, Count: 0},
				{Category: models.IssueGeneral, Count: 1},
			},
			expected: models.IssueGeneral,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, err := TopIssue(tt.counts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, top)
		})
	}

	_, err := TopIssue(CountIssues(nil))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 33.3, Percent(1, 3))
	assert.Equal(t, 66.7, Percent(2, 3))
	assert.Equal(t, 100.0, Percent(7, 7))
	assert.Equal(t, 0.0, Percent(0, 0))
}
