package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enumerated values accepted for the Pet.Category field.
// The literals are kept in the original French wire format so that
// existing clients continue to work unchanged.
const (
	CategoryCat  = "chat"
	CategoryDog  = "chien"
	CategoryBird = "oiseau"
)

// Enumerated values accepted for the Pet.Gender field.
const (
	GenderMale   = "mâle"
	GenderFemale = "femelle"
)

// Enumerated values accepted for the Pet.Size field.
const (
	SizeSmall  = "petit"
	SizeMedium = "moyen"
	SizeLarge  = "grand"
)

// IsValidCategory reports whether v is one of the accepted category literals.
func IsValidCategory(v string) bool {
	return v == CategoryCat || v == CategoryDog || v == CategoryBird
}

// IsValidGender reports whether v is one of the accepted gender literals.
func IsValidGender(v string) bool {
	return v == GenderMale || v == GenderFemale
}

// IsValidSize reports whether v is one of the accepted size literals.
func IsValidSize(v string) bool {
	return v == SizeSmall || v == SizeMedium || v == SizeLarge
}

// Pet represents a single adoption listing.
//
// Every pet belongs to exactly one user (the Owner reference), who is the
// only identity allowed to mutate or delete the record. The adoption flag
// is a one-way transition: once set to true it is never reset within the
// API surface.
type Pet struct {
	// ID is the store-assigned unique identifier of the listing.
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// Name is the pet's display name.
	Name string `json:"name" bson:"name"`

	// Description is the free-form adoption text shown to visitors.
	Description string `json:"description" bson:"description"`

	// Age is the pet's age in years. Must be zero or positive.
	Age int `json:"age" bson:"age"`

	// Category is one of the category enum literals (chat/chien/oiseau).
	Category string `json:"category" bson:"category"`

	// Breed is the pet's breed.
	Breed string `json:"breed" bson:"breed"`

	// Gender is one of the gender enum literals.
	Gender string `json:"gender" bson:"gender"`

	// Size is one of the size enum literals.
	Size string `json:"size" bson:"size"`

	// Color is the pet's coat color.
	Color string `json:"color" bson:"color"`

	// IsVaccinated reports whether the pet's vaccinations are up to date.
	IsVaccinated bool `json:"isVaccinated" bson:"isVaccinated"`

	// IsSterilized reports whether the pet has been sterilized.
	IsSterilized bool `json:"isSterilized" bson:"isSterilized"`

	// IsAdopted reports whether the pet has already been adopted.
	// Settable to true only via the dedicated adoption endpoint.
	IsAdopted bool `json:"isAdopted" bson:"isAdopted"`

	// ImageURL is an optional reference to the pet's photo.
	ImageURL string `json:"imageUrl" bson:"imageUrl"`

	// SpecialNeeds is an optional note about medical or behavioural needs.
	SpecialNeeds string `json:"specialNeeds" bson:"specialNeeds"`

	// Owner references the user who created the listing.
	// It is the authorization source of truth for every mutation.
	Owner primitive.ObjectID `json:"owner" bson:"owner"`

	// OwnerInfo is the expanded owner summary populated on reads via a
	// $lookup join. It is never written back to the collection.
	OwnerInfo *UserSummary `json:"ownerInfo,omitempty" bson:"ownerInfo,omitempty"`

	// CreatedAt is the timestamp when the listing was created.
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName returns the name of the document collection
// associated with the Pet model.
func (p Pet) CollectionName() string {
	return "pets"
}
