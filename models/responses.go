package models

// MessageResponse is the generic JSON envelope for confirmations and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned from the register and login endpoints.
type AuthResponse struct {
	// Message is a human-readable confirmation.
	Message string `json:"message"`

	// Token is the signed bearer token the client must present on
	// protected endpoints.
	Token string `json:"token"`

	// User is the public summary of the authenticated account.
	User UserSummary `json:"user"`
}

// ProfileResponse is returned from GET /api/auth/me with the full
// (password-free) profile of the authenticated user.
type ProfileResponse struct {
	User User `json:"user"`
}

// PetResponse wraps a single pet record, optionally with a confirmation
// message for mutating endpoints.
type PetResponse struct {
	Message string `json:"message,omitempty"`
	Pet     Pet    `json:"pet"`
}

// PetListResponse is the paginated listing envelope.
type PetListResponse struct {
	// Pets is the requested page of records.
	Pets []Pet `json:"pets"`

	// TotalPages is ceil(TotalPets / limit) for the applied filter.
	TotalPages int `json:"totalPages"`

	// CurrentPage echoes the requested 1-indexed page number.
	CurrentPage int `json:"currentPage"`

	// TotalPets is the number of records matching the filter,
	// independent of pagination.
	TotalPets int64 `json:"totalPets"`
}

// MyPetsResponse wraps the caller's own listings.
type MyPetsResponse struct {
	Pets []Pet `json:"pets"`
}

// CategoryCount is one per-category bucket of the stats aggregation.
type CategoryCount struct {
	Category string `json:"category" bson:"_id"`
	Count    int64  `json:"count" bson:"count"`
}

// StatsResponse is returned from GET /api/pets/stats/summary.
type StatsResponse struct {
	TotalPets      int64           `json:"totalPets"`
	AdoptedPets    int64           `json:"adoptedPets"`
	AvailablePets  int64           `json:"availablePets"`
	PetsByCategory []CategoryCount `json:"petsByCategory"`
}
