package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pet-adopt/internal/logger"
	"github.com/MKhiriev/go-pet-adopt/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// petRepository is the MongoDB-backed implementation of [PetRepository].
// It handles listing persistence, filtered pagination, the adoption
// transition, and the stats aggregation against the "pets" collection.
type petRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewPetRepository constructs a [PetRepository] backed by the provided
// database handle and logger.
func NewPetRepository(db *DB, logger *logger.Logger) PetRepository {
	logger.Debug().Msg("creating pet repository")
	return &petRepository{
		collection: db.Collection(models.Pet{}.CollectionName()),
		logger:     logger,
	}
}

// ownerLookupStages returns the aggregation stages that expand a pet's
// owner reference into the embedded ownerInfo summary. The unwind stage
// preserves pets whose owner document is missing so a broken reference
// never hides the listing itself.
func ownerLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: models.User{}.CollectionName()},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "ownerInfo"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$ownerInfo"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

// CreatePet persists a new listing document and returns the fully populated
// [models.Pet] with the store-assigned ID and timestamps.
func (r *petRepository) CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	pet.CreatedAt = now
	pet.UpdatedAt = now
	pet.OwnerInfo = nil

	result, err := r.collection.InsertOne(ctx, pet)
	if err != nil {
		log.Err(err).Str("func", "*petRepository.CreatePet").Msg("error: insert failed")
		return models.Pet{}, fmt.Errorf("unexpected store error: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		log.Error().Str("func", "*petRepository.CreatePet").Msg("error: inserted ID is not an ObjectID")
		return models.Pet{}, errors.New("unexpected inserted ID type")
	}

	pet.ID = insertedID
	return pet, nil
}

// FindPetByID retrieves a single listing with its owner summary expanded.
//
// Error handling:
//   - no matching document → [ErrPetNotFound].
//   - any other driver-level error → wrapped as "unexpected store error".
func (r *petRepository) FindPetByID(ctx context.Context, id primitive.ObjectID) (models.Pet, error) {
	log := logger.FromContext(ctx)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Err(err).Str("func", "*petRepository.FindPetByID").Msg("error: aggregation failed")
		return models.Pet{}, fmt.Errorf("unexpected store error: %w", err)
	}
	defer cursor.Close(ctx)

	var pets []models.Pet
	if err := cursor.All(ctx, &pets); err != nil {
		log.Err(err).Str("func", "*petRepository.FindPetByID").Msg("error: decoding failed")
		return models.Pet{}, fmt.Errorf("unexpected store error: %w", err)
	}

	if len(pets) == 0 {
		return models.Pet{}, ErrPetNotFound
	}

	return pets[0], nil
}

// FindPets returns one page of listings matching the query, owner summaries
// expanded, together with the total number of matching documents.
//
// The filter and sort documents are produced by [BuildPetFilter] and
// [BuildPetSort]; the page window comes from the query's skip/limit pair.
// The total is computed with a separate CountDocuments call over the same
// filter so that pagination metadata is independent of the page window.
func (r *petRepository) FindPets(ctx context.Context, query models.PetListQuery) ([]models.Pet, int64, error) {
	log := logger.FromContext(ctx)

	filter := BuildPetFilter(query)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: BuildPetSort(query)}},
		bson.D{{Key: "$skip", Value: int64(query.Skip())}},
		bson.D{{Key: "$limit", Value: int64(query.Limit)}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Err(err).Str("func", "*petRepository.FindPets").Msg("error: aggregation failed")
		return nil, 0, fmt.Errorf("unexpected store error: %w", err)
	}
	defer cursor.Close(ctx)

	pets := make([]models.Pet, 0, query.Limit)
	if err := cursor.All(ctx, &pets); err != nil {
		log.Err(err).Str("func", "*petRepository.FindPets").Msg("error: decoding failed")
		return nil, 0, fmt.Errorf("unexpected store error: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*petRepository.FindPets").Msg("error: count failed")
		return nil, 0, fmt.Errorf("unexpected store error: %w", err)
	}

	return pets, total, nil
}

// FindPetsByOwner returns every listing owned by the given user, newest
// first, with owner summaries expanded.
func (r *petRepository) FindPetsByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Pet, error) {
	log := logger.FromContext(ctx)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Err(err).Str("func", "*petRepository.FindPetsByOwner").Msg("error: aggregation failed")
		return nil, fmt.Errorf("unexpected store error: %w", err)
	}
	defer cursor.Close(ctx)

	pets := make([]models.Pet, 0)
	if err := cursor.All(ctx, &pets); err != nil {
		log.Err(err).Str("func", "*petRepository.FindPetsByOwner").Msg("error: decoding failed")
		return nil, fmt.Errorf("unexpected store error: %w", err)
	}

	return pets, nil
}

// UpdatePet applies the non-nil fields of update as a partial $set and
// returns the updated listing with its owner summary expanded.
//
// Owner and adoption flag are never part of the update document; the
// former is immutable and the latter transitions only via [MarkAdopted].
func (r *petRepository) UpdatePet(ctx context.Context, id primitive.ObjectID, update models.PetUpdateRequest) (models.Pet, error) {
	log := logger.FromContext(ctx)

	set := buildUpdateDocument(update)
	set = append(set, bson.E{Key: "updatedAt", Value: time.Now().UTC()})

	result, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
	)
	if err != nil {
		log.Err(err).Str("func", "*petRepository.UpdatePet").Msg("error: update failed")
		return models.Pet{}, fmt.Errorf("unexpected store error: %w", err)
	}

	if result.MatchedCount == 0 {
		return models.Pet{}, ErrPetNotFound
	}

	return r.FindPetByID(ctx, id)
}

// MarkAdopted sets the adoption flag to true and returns the updated
// listing. Calling it on an already adopted pet is a no-op that still
// succeeds, which makes the adoption endpoint idempotent.
func (r *petRepository) MarkAdopted(ctx context.Context, id primitive.ObjectID) (models.Pet, error) {
	log := logger.FromContext(ctx)

	result, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "isAdopted", Value: true},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
	)
	if err != nil {
		log.Err(err).Str("func", "*petRepository.MarkAdopted").Msg("error: update failed")
		return models.Pet{}, fmt.Errorf("unexpected store error: %w", err)
	}

	if result.MatchedCount == 0 {
		return models.Pet{}, ErrPetNotFound
	}

	return r.FindPetByID(ctx, id)
}

// DeletePet removes the listing with the given identifier.
func (r *petRepository) DeletePet(ctx context.Context, id primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		log.Err(err).Str("func", "*petRepository.DeletePet").Msg("error: delete failed")
		return fmt.Errorf("unexpected store error: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrPetNotFound
	}

	return nil
}

// Stats aggregates adoption counters and per-category totals.
//
// Total/adopted/available come from three CountDocuments calls; the
// per-category buckets from a $group aggregation, mirroring the shape
// the API has always returned.
func (r *petRepository) Stats(ctx context.Context) (models.StatsResponse, error) {
	log := logger.FromContext(ctx)

	var stats models.StatsResponse
	var err error

	if stats.TotalPets, err = r.collection.CountDocuments(ctx, bson.D{}); err != nil {
		log.Err(err).Str("func", "*petRepository.Stats").Msg("error: total count failed")
		return models.StatsResponse{}, fmt.Errorf("unexpected store error: %w", err)
	}

	if stats.AdoptedPets, err = r.collection.CountDocuments(ctx, bson.D{{Key: "isAdopted", Value: true}}); err != nil {
		log.Err(err).Str("func", "*petRepository.Stats").Msg("error: adopted count failed")
		return models.StatsResponse{}, fmt.Errorf("unexpected store error: %w", err)
	}

	if stats.AvailablePets, err = r.collection.CountDocuments(ctx, bson.D{{Key: "isAdopted", Value: false}}); err != nil {
		log.Err(err).Str("func", "*petRepository.Stats").Msg("error: available count failed")
		return models.StatsResponse{}, fmt.Errorf("unexpected store error: %w", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Err(err).Str("func", "*petRepository.Stats").Msg("error: aggregation failed")
		return models.StatsResponse{}, fmt.Errorf("unexpected store error: %w", err)
	}
	defer cursor.Close(ctx)

	stats.PetsByCategory = make([]models.CategoryCount, 0)
	if err := cursor.All(ctx, &stats.PetsByCategory); err != nil {
		log.Err(err).Str("func", "*petRepository.Stats").Msg("error: decoding failed")
		return models.StatsResponse{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return stats, nil
}

// buildUpdateDocument maps the non-nil fields of a partial update request
// to $set entries.
func buildUpdateDocument(update models.PetUpdateRequest) bson.D {
	set := bson.D{}

	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Age != nil {
		set = append(set, bson.E{Key: "age", Value: *update.Age})
	}
	if update.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *update.Category})
	}
	if update.Breed != nil {
		set = append(set, bson.E{Key: "breed", Value: *update.Breed})
	}
	if update.Gender != nil {
		set = append(set, bson.E{Key: "gender", Value: *update.Gender})
	}
	if update.Size != nil {
		set = append(set, bson.E{Key: "size", Value: *update.Size})
	}
	if update.Color != nil {
		set = append(set, bson.E{Key: "color", Value: *update.Color})
	}
	if update.IsVaccinated != nil {
		set = append(set, bson.E{Key: "isVaccinated", Value: *update.IsVaccinated})
	}
	if update.IsSterilized != nil {
		set = append(set, bson.E{Key: "isSterilized", Value: *update.IsSterilized})
	}
	if update.ImageURL != nil {
		set = append(set, bson.E{Key: "imageUrl", Value: *update.ImageURL})
	}
	if update.SpecialNeeds != nil {
		set = append(set, bson.E{Key: "specialNeeds", Value: *update.SpecialNeeds})
	}

	return set
}
