package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/enzomv1999/GloboClima/internal/common"
	"github.com/enzomv1999/GloboClima/internal/server/models"
	"github.com/enzomv1999/GloboClima/internal/server/repositories/favorites"
)

const labelMaxLength = 100

type FavoriteService struct {
	repo favorites.Repository
}

func NewFavoriteService(repo favorites.Repository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

func validateFavoriteInput(kind, label string) error {
	v := common.NewValidationError()

	if label == "" {
		v.Add("label", "label is required")
	} else if utf8.RuneCountInString(label) > labelMaxLength {
		v.Add("label", fmt.Sprintf("label must not exceed %d characters", labelMaxLength))
	}

	if kind != models.KindCity && kind != models.KindCountry {
		v.Add("kind", fmt.Sprintf("kind must be either %q or %q", models.KindCity, models.KindCountry))
	}

	if v.Empty() {
		return nil
	}
	return v
}

// Create validates the input, builds a favorite owned by ownerUsername and
// persists it. All field violations are collected into one error. The
// returned favorite carries the generated id so the caller can address it
// immediately.
func (s *FavoriteService) Create(ctx context.Context, ownerUsername, kind, label string) (*models.Favorite, error) {

	if err := validateFavoriteInput(kind, label); err != nil {
		return nil, err
	}

	favorite := &models.Favorite{
		ID:            uuid.NewString(),
		OwnerUsername: ownerUsername,
		Kind:          kind,
		Label:         label,
	}

	if err := s.repo.Save(ctx, favorite); err != nil {
		return nil, err
	}

	return favorite, nil
}

// List returns the owner's favorites. An owner with no favorites gets an
// empty slice, never an error.
func (s *FavoriteService) List(ctx context.Context, ownerUsername string) ([]models.Favorite, error) {
	result, err := s.repo.ListByOwner(ctx, ownerUsername)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []models.Favorite{}
	}
	return result, nil
}

// Delete removes the favorite with the given id on behalf of
// requesterUsername. A missing id yields ErrNotFound before ownership is
// considered; a favorite owned by someone else yields ErrForbidden.
func (s *FavoriteService) Delete(ctx context.Context, requesterUsername, id string) error {

	favorite, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return err
	}

	if favorite.OwnerUsername != requesterUsername {
		return common.ErrForbidden
	}

	return s.repo.DeleteByID(ctx, id)
}
