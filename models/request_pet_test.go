package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func validCreateRequest() PetCreateRequest {
	return PetCreateRequest{
		Name:        "Minou",
		Description: "Chat calme et affectueux",
		Age:         intPtr(3),
		Category:    CategoryCat,
		Breed:       "Européen",
		Gender:      GenderMale,
		Size:        SizeSmall,
		Color:       "noir",
	}
}

func TestPetCreateRequest_Validate_Success(t *testing.T) {
	require.NoError(t, validCreateRequest().Validate())
}

func TestPetCreateRequest_Validate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PetCreateRequest)
	}{
		{"missing name", func(r *PetCreateRequest) { r.Name = "" }},
		{"missing description", func(r *PetCreateRequest) { r.Description = "" }},
		{"missing age", func(r *PetCreateRequest) { r.Age = nil }},
		{"negative age", func(r *PetCreateRequest) { r.Age = intPtr(-1) }},
		{"missing breed", func(r *PetCreateRequest) { r.Breed = "" }},
		{"missing color", func(r *PetCreateRequest) { r.Color = "" }},
		{"unknown category", func(r *PetCreateRequest) { r.Category = "poisson" }},
		{"unknown gender", func(r *PetCreateRequest) { r.Gender = "autre" }},
		{"unknown size", func(r *PetCreateRequest) { r.Size = "énorme" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestPetCreateRequest_Pet(t *testing.T) {
	req := validCreateRequest()
	req.IsVaccinated = true

	pet := req.Pet()

	assert.Equal(t, req.Name, pet.Name)
	assert.Equal(t, 3, pet.Age)
	assert.True(t, pet.IsVaccinated)
	assert.False(t, pet.IsAdopted, "a new listing is never adopted")
	assert.True(t, pet.Owner.IsZero(), "owner is stamped by the service, not the request")
}

func TestPetUpdateRequest_Validate(t *testing.T) {
	assert.NoError(t, PetUpdateRequest{}.Validate())
	assert.NoError(t, PetUpdateRequest{Name: strPtr("Rex"), Age: intPtr(0)}.Validate())

	assert.Error(t, PetUpdateRequest{Name: strPtr("")}.Validate())
	assert.Error(t, PetUpdateRequest{Age: intPtr(-3)}.Validate())
	assert.Error(t, PetUpdateRequest{Category: strPtr("dragon")}.Validate())
	assert.Error(t, PetUpdateRequest{Gender: strPtr("inconnu")}.Validate())
	assert.Error(t, PetUpdateRequest{Size: strPtr("géant")}.Validate())
}

func TestPetUpdateRequest_IsEmpty(t *testing.T) {
	assert.True(t, PetUpdateRequest{}.IsEmpty())
	assert.False(t, PetUpdateRequest{Color: strPtr("roux")}.IsEmpty())
}
