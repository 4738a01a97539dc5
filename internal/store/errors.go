package store

import "errors"

// Sentinel errors returned by the repositories. Callers match against them
// with [errors.Is] and translate them to transport-level failures.
var (
	// ErrUserAlreadyExists is returned when a registration collides with
	// an existing username or email (unique index violation).
	ErrUserAlreadyExists = errors.New("user with this email or username already exists")

	// ErrNoUserWasFound is returned when no user document matches the
	// requested identifier or email.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPetNotFound is returned when no pet document matches the
	// requested identifier.
	ErrPetNotFound = errors.New("pet not found")
)
