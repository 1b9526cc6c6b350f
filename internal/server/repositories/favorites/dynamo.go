package favorites

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/enzomv1999/GloboClima/internal/common"
	"github.com/enzomv1999/GloboClima/internal/server/models"
)

// DynamoAPI is the subset of the DynamoDB client used by this repository.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type DynamoRepository struct {
	client DynamoAPI
	table  string
}

func NewDynamoRepository(client DynamoAPI, table string) *DynamoRepository {
	return &DynamoRepository{client: client, table: table}
}

func (r *DynamoRepository) GetByID(ctx context.Context, id string) (*models.Favorite, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		ConsistentRead: aws.Bool(true),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get favorite: %v", common.ErrStoreUnavailable, err)
	}

	if out.Item == nil {
		return nil, common.ErrNotFound
	}

	favorite := &models.Favorite{}
	if err := attributevalue.UnmarshalMap(out.Item, favorite); err != nil {
		return nil, fmt.Errorf("%w: unmarshal favorite: %v", common.ErrStoreUnavailable, err)
	}

	return favorite, nil
}

// Save stamps CreatedAt with the current time and upserts the record.
func (r *DynamoRepository) Save(ctx context.Context, favorite *models.Favorite) error {
	favorite.CreatedAt = time.Now().UTC()

	item, err := attributevalue.MarshalMap(favorite)
	if err != nil {
		return fmt.Errorf("%w: marshal favorite: %v", common.ErrStoreUnavailable, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("%w: put favorite: %v", common.ErrStoreUnavailable, err)
	}

	return nil
}

// ListByOwner scans the favorites table with an equality filter on
// ownerUsername. Order of the result is whatever the store returns.
func (r *DynamoRepository) ListByOwner(ctx context.Context, ownerUsername string) ([]models.Favorite, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.table),
		FilterExpression: aws.String("ownerUsername = :o"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":o": &types.AttributeValueMemberS{Value: ownerUsername},
		},
	}

	result := []models.Favorite{}
	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("%w: scan favorites: %v", common.ErrStoreUnavailable, err)
		}

		page := []models.Favorite{}
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("%w: unmarshal favorites: %v", common.ErrStoreUnavailable, err)
		}
		result = append(result, page...)

		if out.LastEvaluatedKey == nil {
			return result, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// DeleteByID removes the record if present. DynamoDB DeleteItem succeeds on
// a missing key, which gives the idempotency the flow layer relies on.
func (r *DynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: delete favorite: %v", common.ErrStoreUnavailable, err)
	}

	return nil
}
