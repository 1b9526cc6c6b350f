package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/enzomv1999/GloboClima/internal/common"
	"github.com/enzomv1999/GloboClima/internal/dbx"
	"github.com/enzomv1999/GloboClima/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Favorite, error) {
	query :=
		`SELECT id, owner_username, kind, label, created_at FROM favorites
		 WHERE id = $1
		 `

	favorite := &models.Favorite{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&favorite.ID, &favorite.OwnerUsername, &favorite.Kind, &favorite.Label, &favorite.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: select favorite: %v", common.ErrStoreUnavailable, err)
	}

	return favorite, nil
}

// Save stamps CreatedAt with the current time and upserts the record.
func (r *PostgresRepository) Save(ctx context.Context, favorite *models.Favorite) error {
	favorite.CreatedAt = time.Now().UTC()

	query :=
		`INSERT INTO favorites (id, owner_username, kind, label, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE
		 SET owner_username = EXCLUDED.owner_username,
		     kind = EXCLUDED.kind,
		     label = EXCLUDED.label,
		     created_at = EXCLUDED.created_at
		 `

	_, err := r.db.ExecContext(ctx, query,
		favorite.ID, favorite.OwnerUsername, favorite.Kind, favorite.Label, favorite.CreatedAt)

	if err != nil {
		return fmt.Errorf("%w: upsert favorite: %v", common.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerUsername string) ([]models.Favorite, error) {
	query :=
		`SELECT id, owner_username, kind, label, created_at FROM favorites
		 WHERE owner_username = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerUsername)
	if err != nil {
		return nil, fmt.Errorf("%w: select favorites: %v", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	result := []models.Favorite{}
	for rows.Next() {
		var favorite models.Favorite
		if err := rows.Scan(&favorite.ID, &favorite.OwnerUsername, &favorite.Kind, &favorite.Label, &favorite.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan favorite row: %v", common.ErrStoreUnavailable, err)
		}
		result = append(result, favorite)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate favorites: %v", common.ErrStoreUnavailable, err)
	}

	return result, nil
}

// DeleteByID removes the record if present. A delete that matches no rows is
// still a success; the flow layer has already decided visibility.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM favorites WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%w: delete favorite: %v", common.ErrStoreUnavailable, err)
	}

	return nil
}
