package users

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/enzomv1999/GloboClima/internal/common"
	"github.com/enzomv1999/GloboClima/internal/server/models"
)

// DynamoAPI is the subset of the DynamoDB client used by this repository.
type DynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type DynamoRepository struct {
	client DynamoAPI
	table  string
}

func NewDynamoRepository(client DynamoAPI, table string) *DynamoRepository {
	return &DynamoRepository{client: client, table: table}
}

// GetByUsername scans the users table with an equality filter on username.
// The table has no index on username, so every page is read.
func (r *DynamoRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.table),
		FilterExpression: aws.String("username = :u"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":u": &types.AttributeValueMemberS{Value: username},
		},
	}

	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("%w: scan users: %v", common.ErrStoreUnavailable, err)
		}

		if len(out.Items) > 0 {
			user := &models.User{}
			if err := attributevalue.UnmarshalMap(out.Items[0], user); err != nil {
				return nil, fmt.Errorf("%w: unmarshal user: %v", common.ErrStoreUnavailable, err)
			}
			return user, nil
		}

		if out.LastEvaluatedKey == nil {
			return nil, common.ErrNotFound
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *DynamoRepository) Create(ctx context.Context, user *models.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("%w: marshal user: %v", common.ErrStoreUnavailable, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("%w: put user: %v", common.ErrStoreUnavailable, err)
	}

	return nil
}
