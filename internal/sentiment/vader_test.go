package sentiment

import (
	"context"
	"testing"

	"github.com/spacesedan/smartnotes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelCompound(t *testing.T) {
	tests := []struct {
		compound float64
		label    string
		score    float64
	}{
		{0.8, models.LabelPositive, 0.8},
		{0.2, models.LabelPositive, 0.2},
		{-0.65, models.LabelNegative, 0.65},
		{0.0, models.LabelNeutral, 1},
		{-0.1, models.LabelNeutral, 0.9},
	}
	for _, tt := range tests {
		got := LabelCompound(tt.compound)
		assert.Equal(t, tt.label, got.Label, "compound %v", tt.compound)
		assert.InDelta(t, tt.score, got.Score, 1e-9, "compound %v", tt.compound)
	}
}

func TestVaderClassifyBatch(t *testing.T) {
	v := NewVaderClassifier()
	texts := []string{
		"Great service, the nurses were wonderful and kind!",
		"Terrible experience. The staff were rude and horrible.",
	}

	results, err := v.ClassifyBatch(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, models.LabelPositive, results[0].Label)
	assert.Equal(t, models.LabelNegative, results[1].Label)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
	}
}

func TestVaderClassifyBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewVaderClassifier().ClassifyBatch(ctx, []string{"fine"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvertMarkdownToText(t *testing.T) {
	in := "**Loved** the [new ward](https://example.com/ward) & the staff\n\nsee www.example.com"
	assert.Equal(t, "Loved the new ward & the staff see", ConvertMarkdownToText(in))
}

func TestConvertMarkdownToTextDecodesEntities(t *testing.T) {
	in := "Nurse&#8217;s care was kind &mdash; thank you &copy;"
	assert.Equal(t, "Nurse\u2019s care was kind \u2014 thank you \u00a9", ConvertMarkdownToText(in))
}
