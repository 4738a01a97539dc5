package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-adopt/internal/config"
	"github.com/MKhiriev/go-pet-adopt/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps the MongoDB client and the application database handle.
//
// It owns connection lifecycle (connect, ping, disconnect) and index
// bootstrap; repositories receive collections through [DB.Collection]
// rather than holding the client directly.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewDB establishes a connection to MongoDB using the provided settings,
// verifies it with a ping, and creates the indexes the application relies on.
//
// The connect and ping steps are bounded by cfg.ConnectTimeout.
// Returns a ready-to-use *DB or a wrapped error.
func NewDB(cfg config.Mongo, logger *logger.Logger) (*DB, error) {
	logger.Debug().Str("uri", cfg.URI).Str("database", cfg.Database).Msg("connecting to mongodb")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}

	db := &DB{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
	}

	if err := db.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	logger.Info().Msg("connected to mongodb")

	return db, nil
}

// Collection returns a handle to the named collection of the application
// database.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Close disconnects the underlying client. Safe to call once during
// application shutdown.
func (d *DB) Close(ctx context.Context) error {
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting from mongodb: %w", err)
	}
	return nil
}

// ensureIndexes creates the indexes the data model depends on:
//   - unique username and email on the users collection (global uniqueness);
//   - a text index over name/description/breed on the pets collection,
//     backing the `search` listing parameter;
//   - an owner index on the pets collection for my-pets lookups;
//   - a createdAt index backing the default newest-first sort.
//
// Index creation is idempotent: existing identical indexes are left as is.
func (d *DB) ensureIndexes(ctx context.Context) error {
	users := d.Collection("users")
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("error creating users indexes: %w", err)
	}

	pets := d.Collection("pets")
	_, err = pets.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "breed", Value: "text"},
			},
		},
		{
			Keys: bson.D{{Key: "owner", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("error creating pets indexes: %w", err)
	}

	return nil
}
