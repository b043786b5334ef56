package report

import (
	"fmt"
	"time"

	"github.com/spacesedan/smartnotes/internal/aggregate"
	"github.com/spacesedan/smartnotes/internal/models"
)

const Title = "AI Smart Notes from Patient Surveys"

const (
	LevelAlert   = "alert"
	LevelSuccess = "success"
)

type Slice struct {
	Label   string
	Count   int
	Percent float64
}

type Bar struct {
	Label string
	Count int
}

type Message struct {
	Level string
	Text  string
}

// Report is the presentation-ready view of one analysis run.
type Report struct {
	GeneratedAt     time.Time
	Total           int
	NegativePercent float64
	TopIssue        string
	Sentiment       []Slice
	Issues          []Bar
	Alerts          []Message
	Keywords        []string
	Notes           []string
}

func Build(result *models.AnalysisResult, now time.Time) Report {
	stats := result.Stats
	r := Report{
		GeneratedAt:     now,
		Total:           stats.Total,
		NegativePercent: stats.NegativePercent,
		TopIssue:        stats.TopIssue.String(),
		Sentiment:       sentimentSlices(stats),
		Keywords:        result.Keywords,
	}

	for _, ic := range stats.IssueCounts {
		if ic.Count == 0 {
			continue
		}
		r.Issues = append(r.Issues, Bar{Label: ic.Category.String(), Count: ic.Count})
	}
	r.Alerts = Alerts(stats)

	r.Notes = make([]string, len(result.Notes))
	for i, note := range result.Notes {
		r.Notes[i] = note.String()
	}
	return r
}

// sentimentSlices splits positive vs negative; other labels are left out of the chart.
func sentimentSlices(stats models.SummaryStats) []Slice {
	charted := stats.PositiveCount + stats.NegativeCount
	return []Slice{
		{Label: "Positive", Count: stats.PositiveCount, Percent: aggregate.Percent(stats.PositiveCount, charted)},
		{Label: "Negative", Count: stats.NegativeCount, Percent: aggregate.Percent(stats.NegativeCount, charted)},
	}
}

// Alerts returns one alert per non-General issue that has complaints, followed by
// a success message with the positive count.
func Alerts(stats models.SummaryStats) []Message {
	var messages []Message
	for _, ic := range stats.IssueCounts {
		if ic.Category == models.IssueGeneral || ic.Count == 0 {
			continue
		}
		messages = append(messages, Message{
			Level: LevelAlert,
			Text:  fmt.Sprintf("%s Issues (%d complaints)", ic.Category, ic.Count),
		})
	}
	return append(messages, Message{
		Level: LevelSuccess,
		Text:  fmt.Sprintf("Positive Feedback (%d)", stats.PositiveCount),
	})
}
