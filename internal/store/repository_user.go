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

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type userRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database handle and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		collection: db.Collection(models.User{}.CollectionName()),
		logger:     logger,
	}
}

// CreateUser persists a new user document and returns the fully populated
// [models.User] with the store-assigned ID and timestamps.
//
// Error handling:
//   - unique index violation on username or email → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected store error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
		return models.User{}, fmt.Errorf("unexpected store error: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		log.Error().Str("func", "*userRepository.CreateUser").Msg("error: inserted ID is not an ObjectID")
		return models.User{}, errors.New("unexpected inserted ID type")
	}

	user.ID = insertedID
	return user, nil
}

// FindUserByEmail retrieves the user document whose email matches the one
// provided.
//
// Error handling:
//   - no matching document → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected store error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.collection.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&foundUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: lookup failed")
		return models.User{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves the user document with the given identifier.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&foundUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: lookup failed")
		return models.User{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return foundUser, nil
}
