// Package repomanager wires concrete repository implementations for the
// configured storage driver.
package repomanager

import (
	"context"
	"fmt"

	"github.com/enzomv1999/GloboClima/internal/server/config"
	"github.com/enzomv1999/GloboClima/internal/server/repositories/favorites"
	"github.com/enzomv1999/GloboClima/internal/server/repositories/users"
)

// RepositoryManager hands out the repositories backed by one storage driver.
type RepositoryManager interface {
	Users() users.Repository
	Favorites() favorites.Repository
	Close() error
}

// New builds the repository manager selected by cfg.StorageDriver.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.StorageDriver {
	case config.DriverDynamo:
		return NewDynamoRepositoryManager(ctx, cfg)
	case config.DriverPostgres:
		return NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}
}
