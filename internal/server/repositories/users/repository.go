package users

import (
	"context"

	"github.com/enzomv1999/GloboClima/internal/server/models"
)

// Repository persists user accounts.
//
// GetByUsername filters the whole collection by username equality. On the
// document store this is a full table scan, O(n) per call; callers must not
// assume it is a cheap point lookup. It returns common.ErrNotFound when no
// user matches, and an error wrapping common.ErrStoreUnavailable on
// infrastructure failure.
//
// Create writes unconditionally. IDs are random enough that a collision is
// treated as impossible; there is no uniqueness constraint on username at
// this level.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
