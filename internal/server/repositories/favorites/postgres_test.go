package favorites

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/enzomv1999/GloboClima/internal/common"
	"github.com/enzomv1999/GloboClima/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const selectFavoriteQuery = `(?s)^SELECT\s+id,\s*owner_username,\s*kind,\s*label,\s*created_at\s+FROM\s+favorites\s+WHERE\s+id\s*=\s*\$1\s*$`
const selectByOwnerQuery = `(?s)^SELECT\s+id,\s*owner_username,\s*kind,\s*label,\s*created_at\s+FROM\s+favorites\s+WHERE\s+owner_username\s*=\s*\$1\s*$`
const upsertFavoriteQuery = `(?s)^INSERT\s+INTO\s+favorites\s*\(id,\s*owner_username,\s*kind,\s*label,\s*created_at\)\s*VALUES.*ON\s+CONFLICT\s*\(id\)\s*DO\s+UPDATE`
const deleteFavoriteQuery = `(?s)^DELETE\s+FROM\s+favorites\s+WHERE\s+id\s*=\s*\$1\s*$`

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "owner_username", "kind", "label", "created_at"}).
		AddRow("f-1", "alice1", models.KindCity, "Sao Paulo", created)
	mock.ExpectQuery(selectFavoriteQuery).
		WithArgs("f-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "f-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "f-1" || got.OwnerUsername != "alice1" || got.Kind != models.KindCity {
		t.Fatalf("unexpected favorite: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectFavoriteQuery).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestSave_StampsCreatedAt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(upsertFavoriteQuery).
		WithArgs("f-1", "alice1", models.KindCity, "Sao Paulo", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	fav := &models.Favorite{ID: "f-1", OwnerUsername: "alice1", Kind: models.KindCity, Label: "Sao Paulo"}
	before := time.Now().UTC()
	if err := repo.Save(context.Background(), fav); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if fav.CreatedAt.Before(before) {
		t.Fatalf("createdAt not stamped at save time: %v", fav.CreatedAt)
	}
}

func TestListByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "owner_username", "kind", "label", "created_at"}).
		AddRow("f-1", "alice1", models.KindCity, "Sao Paulo", created).
		AddRow("f-2", "alice1", models.KindCountry, "Brazil", created)
	mock.ExpectQuery(selectByOwnerQuery).
		WithArgs("alice1").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "alice1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(got))
	}
}

func TestListByOwner_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "owner_username", "kind", "label", "created_at"})
	mock.ExpectQuery(selectByOwnerQuery).
		WithArgs("nobody1").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "nobody1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestDeleteByID_MissingRowIsNoError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteFavoriteQuery).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteByID(context.Background(), "ghost"); err != nil {
		t.Fatalf("DeleteByID error on missing row: %v", err)
	}
}

func TestDeleteByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteFavoriteQuery).
		WithArgs("f-1").
		WillReturnError(errors.New("db down"))

	err := repo.DeleteByID(context.Background(), "f-1")
	if !errors.Is(err, common.ErrStoreUnavailable) {
		t.Fatalf("expected common.ErrStoreUnavailable, got %v", err)
	}
}
