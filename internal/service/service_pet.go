package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-adopt/internal/logger"
	"github.com/MKhiriev/go-pet-adopt/internal/store"
	"github.com/MKhiriev/go-pet-adopt/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// petService is the concrete implementation of PetService.
// It validates incoming requests, stamps ownership, and delegates
// persistence to a PetRepository.
type petService struct {
	petRepository store.PetRepository
	logger        *logger.Logger
}

// NewPetService constructs a PetService wired to the given PetRepository.
func NewPetService(petRepository store.PetRepository, logger *logger.Logger) PetService {
	return &petService{
		petRepository: petRepository,
		logger:        logger,
	}
}

// Create validates the request and persists a new listing owned by the
// given user. The adoption flag always starts false; the owner always
// comes from the authenticated identity, never from the body.
//
// Returns the created listing with its owner summary expanded, or:
//   - ErrInvalidDataProvided (wrapped with the field-level reason) if the
//     request fails validation.
//   - A wrapped storage error if persistence fails.
func (p *petService) Create(ctx context.Context, owner primitive.ObjectID, request models.PetCreateRequest) (models.Pet, error) {
	log := logger.FromContext(ctx)

	if err := request.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid pet data provided")
		return models.Pet{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	pet := request.Pet()
	pet.Owner = owner
	pet.IsAdopted = false

	created, err := p.petRepository.CreatePet(ctx, pet)
	if err != nil {
		log.Err(err).Msg("pet creation ended with error")
		return models.Pet{}, fmt.Errorf("pet creation ended with error: %w", err)
	}

	return p.petRepository.FindPetByID(ctx, created.ID)
}

// List returns one page of listings matching the query plus pagination
// metadata. Queries built by models.ParsePetListQuery arrive already
// normalised; a query constructed by hand gets the same floor applied here
// so the page math never divides by zero.
func (p *petService) List(ctx context.Context, query models.PetListQuery) (models.PetListResponse, error) {
	log := logger.FromContext(ctx)

	if query.Page < 1 {
		query.Page = models.DefaultPage
	}
	if query.Limit < 1 {
		query.Limit = models.DefaultPageSize
	}

	pets, total, err := p.petRepository.FindPets(ctx, query)
	if err != nil {
		log.Err(err).Msg("pet listing ended with error")
		return models.PetListResponse{}, fmt.Errorf("pet listing ended with error: %w", err)
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return models.PetListResponse{
		Pets:        pets,
		TotalPages:  totalPages,
		CurrentPage: query.Page,
		TotalPets:   total,
	}, nil
}

// Get returns a single listing with its owner summary expanded.
//
// An identifier that is not a valid ObjectID cannot address any document,
// so it is reported as store.ErrPetNotFound rather than a validation error.
func (p *petService) Get(ctx context.Context, id string) (models.Pet, error) {
	objectID, err := parsePetID(id)
	if err != nil {
		return models.Pet{}, err
	}

	return p.petRepository.FindPetByID(ctx, objectID)
}

// MyPets returns every listing owned by the given user, newest first.
func (p *petService) MyPets(ctx context.Context, owner primitive.ObjectID) ([]models.Pet, error) {
	log := logger.FromContext(ctx)

	pets, err := p.petRepository.FindPetsByOwner(ctx, owner)
	if err != nil {
		log.Err(err).Str("owner", owner.Hex()).Msg("owned pets listing ended with error")
		return nil, fmt.Errorf("owned pets listing ended with error: %w", err)
	}

	return pets, nil
}

// Update validates and applies a partial update to the listing. An update
// carrying no fields is a no-op that returns the current state of the
// listing, which keeps repeated PUTs of the same body idempotent.
func (p *petService) Update(ctx context.Context, id string, request models.PetUpdateRequest) (models.Pet, error) {
	log := logger.FromContext(ctx)

	objectID, err := parsePetID(id)
	if err != nil {
		return models.Pet{}, err
	}

	if err := request.Validate(); err != nil {
		log.Error().Err(err).Str("id", id).Msg("invalid pet update data provided")
		return models.Pet{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if request.IsEmpty() {
		return p.petRepository.FindPetByID(ctx, objectID)
	}

	return p.petRepository.UpdatePet(ctx, objectID, request)
}

// Adopt marks the listing as adopted. Adopting an already adopted pet
// succeeds and returns the unchanged listing.
func (p *petService) Adopt(ctx context.Context, id string) (models.Pet, error) {
	objectID, err := parsePetID(id)
	if err != nil {
		return models.Pet{}, err
	}

	return p.petRepository.MarkAdopted(ctx, objectID)
}

// Delete removes the listing.
func (p *petService) Delete(ctx context.Context, id string) error {
	objectID, err := parsePetID(id)
	if err != nil {
		return err
	}

	return p.petRepository.DeletePet(ctx, objectID)
}

// Stats returns adoption counters and per-category totals.
func (p *petService) Stats(ctx context.Context) (models.StatsResponse, error) {
	log := logger.FromContext(ctx)

	stats, err := p.petRepository.Stats(ctx)
	if err != nil {
		log.Err(err).Msg("stats aggregation ended with error")
		return models.StatsResponse{}, fmt.Errorf("stats aggregation ended with error: %w", err)
	}

	return stats, nil
}

// parsePetID converts a path parameter into an ObjectID, mapping malformed
// identifiers to the not-found error.
func parsePetID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", store.ErrPetNotFound, id)
	}
	return objectID, nil
}
