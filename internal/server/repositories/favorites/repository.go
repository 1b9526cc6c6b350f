package favorites

import (
	"context"

	"github.com/enzomv1999/GloboClima/internal/server/models"
)

// Repository persists favorite records.
//
// GetByID is a point lookup by primary key; absent ids yield
// common.ErrNotFound. ListByOwner filters the whole collection by
// ownerUsername equality, a full scan on the document store with no
// ordering guarantee. Save stamps CreatedAt and upserts. DeleteByID is
// idempotent: deleting an id that does not exist is a no-op, not an error.
// Infrastructure failures wrap common.ErrStoreUnavailable.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Favorite, error)
	Save(ctx context.Context, favorite *models.Favorite) error
	ListByOwner(ctx context.Context, ownerUsername string) ([]models.Favorite, error)
	DeleteByID(ctx context.Context, id string) error
}
