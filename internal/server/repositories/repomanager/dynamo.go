package repomanager

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/enzomv1999/GloboClima/internal/server/config"
	"github.com/enzomv1999/GloboClima/internal/server/repositories/favorites"
	"github.com/enzomv1999/GloboClima/internal/server/repositories/users"
)

type DynamoRepositoryManager struct {
	client    *dynamodb.Client
	users     users.Repository
	favorites favorites.Repository
}

func (m *DynamoRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *DynamoRepositoryManager) Favorites() favorites.Repository {
	return m.favorites
}

// Close is a no-op: the DynamoDB client holds no pooled connections that
// need explicit shutdown.
func (m *DynamoRepositoryManager) Close() error {
	return nil
}

func NewDynamoRepositoryManager(ctx context.Context, cfg *config.Config) (*DynamoRepositoryManager, error) {

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
	})

	return &DynamoRepositoryManager{
		client:    client,
		users:     users.NewDynamoRepository(client, cfg.UsersTable),
		favorites: favorites.NewDynamoRepository(client, cfg.FavoritesTable),
	}, nil
}
