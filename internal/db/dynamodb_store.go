package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/spacesedan/smartnotes/internal/models"
)

// all feedback lives under one partition so a Query returns it in sort key order
const dynamoFeedbackSet = "patient-feedback"

// DynamoDBAPI is the subset of *dynamodb.Client the store uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DynamoDBStore expects a table keyed by feedback_set (S, partition) and
// seq (N, sort).
type DynamoDBStore struct {
	client DynamoDBAPI
	table  string
	now    func() time.Time
}

type dynamoFeedback struct {
	FeedbackSet string `dynamodbav:"feedback_set"`
	Seq         int64  `dynamodbav:"seq"`
	models.FeedbackItem
}

func NewDynamoDBStore(client DynamoDBAPI, table string) *DynamoDBStore {
	return &DynamoDBStore{client: client, table: table, now: time.Now}
}

func (s *DynamoDBStore) Append(ctx context.Context, text string) (models.FeedbackItem, error) {
	text, err := normalizeText(text)
	if err != nil {
		return models.FeedbackItem{}, err
	}

	now := s.now().UTC()
	record := dynamoFeedback{
		FeedbackSet: dynamoFeedbackSet,
		Seq:         now.UnixNano(),
		FeedbackItem: models.FeedbackItem{
			ID:          uuid.NewString(),
			Text:        text,
			SubmittedAt: now.Truncate(time.Second),
		},
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return models.FeedbackItem{}, fmt.Errorf("[DynamoDB] failed to marshal feedback: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(seq)"),
	})
	if err != nil {
		return models.FeedbackItem{}, fmt.Errorf("[DynamoDB] failed to put feedback: %w", err)
	}

	slog.Debug("[DynamoDB] Stored feedback", slog.String("id", record.ID))
	return record.FeedbackItem, nil
}

func (s *DynamoDBStore) List(ctx context.Context) ([]models.FeedbackItem, error) {
	paginator := dynamodb.NewQueryPaginator(s.client, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("feedback_set = :set"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":set": &types.AttributeValueMemberS{Value: dynamoFeedbackSet},
		},
		ScanIndexForward: aws.Bool(true),
	})

	var items []models.FeedbackItem
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] query for feedback failed: %w", err)
		}

		var page []dynamoFeedback
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal feedback page",
				slog.String("error", err.Error()))
			return nil, err
		}
		for _, record := range page {
			items = append(items, record.FeedbackItem)
		}
	}

	slog.Info("[DynamoDB] Successfully retrieved feedback", slog.Int("count", len(items)))
	return items, nil
}

func (s *DynamoDBStore) Close() error { return nil }
