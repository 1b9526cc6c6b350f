// Package services implements the application flows on top of the
// repositories: registration/login and favorite CRUD with ownership checks.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/enzomv1999/GloboClima/internal/common"
	"github.com/enzomv1999/GloboClima/internal/server/auth"
	"github.com/enzomv1999/GloboClima/internal/server/config"
	"github.com/enzomv1999/GloboClima/internal/server/models"
	"github.com/enzomv1999/GloboClima/internal/server/repositories/users"
)

const (
	usernameMinLength = 5
	usernameMaxLength = 50
	passwordMinLength = 5
	passwordMaxLength = 100
)

type UserService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

func validateCredentials(username, password string) error {
	v := common.NewValidationError()

	// Limits count characters, not bytes; multibyte input must not shift them.
	if n := utf8.RuneCountInString(username); n < usernameMinLength || n > usernameMaxLength {
		v.Add("username", fmt.Sprintf("username must be between %d and %d characters", usernameMinLength, usernameMaxLength))
	}
	if n := utf8.RuneCountInString(password); n < passwordMinLength || n > passwordMaxLength {
		v.Add("password", fmt.Sprintf("password must be between %d and %d characters", passwordMinLength, passwordMaxLength))
	}

	if v.Empty() {
		return nil
	}
	return v
}

// Register creates a new account with a fresh id and the digest of the
// password. The lookup and the insert are not atomic: two concurrent
// registrations for the same username can both pass the check and both
// insert, since the store has no unique constraint on username. Last write
// wins in that case.
func (s *UserService) Register(ctx context.Context, username, password string) error {

	if err := validateCredentials(username, password); err != nil {
		return err
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return common.ErrUsernameTaken
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	user := &models.User{
		ID:             uuid.NewString(),
		Username:       username,
		PasswordDigest: auth.DigestPassword(password),
		CreatedAt:      time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the credentials and issues a bearer token. An unknown
// username and a wrong password both surface as ErrInvalidCredentials so
// callers cannot tell which one occurred.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(password, user.PasswordDigest) {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}

	return token, nil
}
