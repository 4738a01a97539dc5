// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-pet-adopt/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the authentication middleware stores
// the loaded (password-free) user for the lifetime of a request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserCtxKey, &user)
var UserCtxKey = contextKey("authUser")

// PetCtxKey is the key under which the ownership middleware stores the
// pet record it loaded, so downstream handlers can reuse it without a
// second lookup.
var PetCtxKey = contextKey("ownedPet")

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	return user, ok
}

// GetPetFromContext retrieves the pet loaded by the ownership middleware
// from the context.
func GetPetFromContext(ctx context.Context) (*models.Pet, bool) {
	pet, ok := ctx.Value(PetCtxKey).(*models.Pet)
	return pet, ok
}
