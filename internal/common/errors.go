// Package common defines shared sentinel errors and the validation error
// type used across service layers. Callers should use errors.Is / errors.As
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Auth flow errors.
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Request authentication errors (bearer token).
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")

	// Ownership errors.
	ErrForbidden = errors.New("forbidden")
)
