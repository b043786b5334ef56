package issues

import (
	"strings"

	"github.com/spacesedan/smartnotes/internal/models"
)

// Rule tags feedback containing Keyword with Category.
type Rule struct {
	Keyword  string
	Category models.IssueCategory
}

// Rules are evaluated top to bottom and the first match wins. Keywords are
// lower case.
var Rules = []Rule{
	{Keyword: "wait", Category: models.IssueWaitingTime},
	{Keyword: "clean", Category: models.IssueCleanliness},
}

// Fallback is assigned when no rule matches.
const Fallback = models.IssueGeneral

// Classify maps a feedback text to its issue category.
func Classify(text string) models.IssueCategory {
	lowered := strings.ToLower(text)
	for _, rule := range Rules {
		if strings.Contains(lowered, rule.Keyword) {
			return rule.Category
		}
	}
	return Fallback
}

func ClassifyAll(texts []string) []models.IssueCategory {
	categories := make([]models.IssueCategory, len(texts))
	for i, text := range texts {
		categories[i] = Classify(text)
	}
	return categories
}
