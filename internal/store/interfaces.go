package store

import (
	"context"

	"github.com/MKhiriev/go-pet-adopt/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is the data-access contract for the users collection.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the
	// store-assigned ID and timestamps filled in.
	// Returns ErrUserAlreadyExists on a username/email collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given identifier or
	// ErrNoUserWasFound.
	FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

// PetRepository is the data-access contract for the pets collection.
type PetRepository interface {
	// CreatePet persists a new listing and returns it with the
	// store-assigned ID and timestamps filled in.
	CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error)

	// FindPetByID returns the pet with the given identifier, with the
	// owner summary expanded, or ErrPetNotFound.
	FindPetByID(ctx context.Context, id primitive.ObjectID) (models.Pet, error)

	// FindPets returns one page of listings matching the query together
	// with the total count of matching documents independent of the
	// page window.
	FindPets(ctx context.Context, query models.PetListQuery) ([]models.Pet, int64, error)

	// FindPetsByOwner returns every listing owned by the given user,
	// newest first, with owner summaries expanded.
	FindPetsByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Pet, error)

	// UpdatePet applies the non-nil fields of update to the pet with the
	// given identifier and returns the updated document, or ErrPetNotFound.
	UpdatePet(ctx context.Context, id primitive.ObjectID, update models.PetUpdateRequest) (models.Pet, error)

	// MarkAdopted sets the adoption flag to true and returns the updated
	// document. The operation is idempotent. Returns ErrPetNotFound when
	// no such listing exists.
	MarkAdopted(ctx context.Context, id primitive.ObjectID) (models.Pet, error)

	// DeletePet removes the listing or returns ErrPetNotFound.
	DeletePet(ctx context.Context, id primitive.ObjectID) error

	// Stats aggregates adoption counters and per-category totals over
	// the whole collection.
	Stats(ctx context.Context) (models.StatsResponse, error)
}
