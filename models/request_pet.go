package models

import (
	"errors"
	"fmt"
)

// PetCreateRequest is the JSON body accepted by POST /api/pets.
//
// The owner is never taken from the body; it is stamped from the
// authenticated identity by the service layer. IsAdopted is likewise
// ignored on creation — a fresh listing is always available.
type PetCreateRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Age          *int   `json:"age"`
	Category     string `json:"category"`
	Breed        string `json:"breed"`
	Gender       string `json:"gender"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	IsVaccinated bool   `json:"isVaccinated"`
	IsSterilized bool   `json:"isSterilized"`
	ImageURL     string `json:"imageUrl"`
	SpecialNeeds string `json:"specialNeeds"`
}

// Validate checks required fields and enum membership.
// Error messages are safe to surface to the client verbatim.
func (r PetCreateRequest) Validate() error {
	switch {
	case r.Name == "":
		return errors.New("name is required")
	case r.Description == "":
		return errors.New("description is required")
	case r.Age == nil:
		return errors.New("age is required")
	case *r.Age < 0:
		return errors.New("age must be zero or positive")
	case r.Breed == "":
		return errors.New("breed is required")
	case r.Color == "":
		return errors.New("color is required")
	}

	if !IsValidCategory(r.Category) {
		return fmt.Errorf("category must be one of: %s, %s, %s", CategoryCat, CategoryDog, CategoryBird)
	}
	if !IsValidGender(r.Gender) {
		return fmt.Errorf("gender must be one of: %s, %s", GenderMale, GenderFemale)
	}
	if !IsValidSize(r.Size) {
		return fmt.Errorf("size must be one of: %s, %s, %s", SizeSmall, SizeMedium, SizeLarge)
	}

	return nil
}

// Pet converts the request into a Pet document without owner or timestamps;
// those are filled in by the service and repository layers.
func (r PetCreateRequest) Pet() Pet {
	return Pet{
		Name:         r.Name,
		Description:  r.Description,
		Age:          *r.Age,
		Category:     r.Category,
		Breed:        r.Breed,
		Gender:       r.Gender,
		Size:         r.Size,
		Color:        r.Color,
		IsVaccinated: r.IsVaccinated,
		IsSterilized: r.IsSterilized,
		ImageURL:     r.ImageURL,
		SpecialNeeds: r.SpecialNeeds,
	}
}

// PetUpdateRequest is the JSON body accepted by PUT /api/pets/{id}.
//
// Every field is optional; only fields present in the body are applied.
// Owner and IsAdopted are intentionally absent: ownership never changes
// and the adoption flag is settable only through the dedicated endpoint.
type PetUpdateRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Age          *int    `json:"age"`
	Category     *string `json:"category"`
	Breed        *string `json:"breed"`
	Gender       *string `json:"gender"`
	Size         *string `json:"size"`
	Color        *string `json:"color"`
	IsVaccinated *bool   `json:"isVaccinated"`
	IsSterilized *bool   `json:"isSterilized"`
	ImageURL     *string `json:"imageUrl"`
	SpecialNeeds *string `json:"specialNeeds"`
}

// Validate checks every present field against the same constraints that
// apply at creation time.
func (r PetUpdateRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return errors.New("name must not be empty")
	}
	if r.Description != nil && *r.Description == "" {
		return errors.New("description must not be empty")
	}
	if r.Age != nil && *r.Age < 0 {
		return errors.New("age must be zero or positive")
	}
	if r.Category != nil && !IsValidCategory(*r.Category) {
		return fmt.Errorf("category must be one of: %s, %s, %s", CategoryCat, CategoryDog, CategoryBird)
	}
	if r.Gender != nil && !IsValidGender(*r.Gender) {
		return fmt.Errorf("gender must be one of: %s, %s", GenderMale, GenderFemale)
	}
	if r.Size != nil && !IsValidSize(*r.Size) {
		return fmt.Errorf("size must be one of: %s, %s, %s", SizeSmall, SizeMedium, SizeLarge)
	}
	return nil
}

// IsEmpty reports whether the request carries no fields at all.
func (r PetUpdateRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Age == nil &&
		r.Category == nil && r.Breed == nil && r.Gender == nil &&
		r.Size == nil && r.Color == nil && r.IsVaccinated == nil &&
		r.IsSterilized == nil && r.ImageURL == nil && r.SpecialNeeds == nil
}
