package db

import (
	"context"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items in memory and answers Query in seq order, one item per page.
type fakeDynamo struct {
	items []map[string]types.AttributeValue
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.items = append(f.items, in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	sorted := append([]map[string]types.AttributeValue(nil), f.items...)
	sort.Slice(sorted, func(i, j int) bool { return seqOf(sorted[i]) < seqOf(sorted[j]) })

	start := 0
	if in.ExclusiveStartKey != nil {
		start = int(seqIndex(sorted, seqOf(in.ExclusiveStartKey))) + 1
	}
	if start >= len(sorted) {
		return &dynamodb.QueryOutput{}, nil
	}

	out := &dynamodb.QueryOutput{Items: sorted[start : start+1]}
	if start+1 < len(sorted) {
		out.LastEvaluatedKey = sorted[start]
	}
	return out, nil
}

func seqOf(item map[string]types.AttributeValue) int64 {
	n, _ := strconv.ParseInt(item["seq"].(*types.AttributeValueMemberN).Value, 10, 64)
	return n
}

func seqIndex(items []map[string]types.AttributeValue, seq int64) int64 {
	for i, item := range items {
		if seqOf(item) == seq {
			return int64(i)
		}
	}
	return -1
}

func TestDynamoDBStoreAppendAndList(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDynamo{}
	store := NewDynamoDBStore(fake, "PatientFeedback")

	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	texts := []string{"Long wait in A&E", "Clean rooms", "Lovely staff"}
	for _, text := range texts {
		_, err := store.Append(ctx, text)
		require.NoError(t, err)
	}
	require.Len(t, fake.items, 3)
	assert.Equal(t, dynamoFeedbackSet, fake.items[0]["feedback_set"].(*types.AttributeValueMemberS).Value)

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, texts[i], item.Text)
		assert.NotEmpty(t, item.ID)
	}
	assert.True(t, items[0].SubmittedAt.Equal(base.Add(time.Minute)))
}

func TestDynamoDBStoreRejectsBlankFeedback(t *testing.T) {
	_, err := NewDynamoDBStore(&fakeDynamo{}, "t").Append(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyFeedback)
}
