package sentiment

import (
	"strings"

	"github.com/spacesedan/smartnotes/internal/models"
)

// NormalizeLabel maps the label spellings used by the supported models onto
// the POSITIVE/NEGATIVE/NEUTRAL vocabulary. Unknown labels are upper-cased and
// passed through.
func NormalizeLabel(label string) string {
	switch l := strings.ToUpper(strings.TrimSpace(label)); l {
	case "POSITIVE", "POS", "LABEL_1":
		return models.LabelPositive
	case "NEGATIVE", "NEG", "LABEL_0":
		return models.LabelNegative
	case "NEUTRAL", "NEU":
		return models.LabelNeutral
	default:
		return l
	}
}

func clampScore(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}
