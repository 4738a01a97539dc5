package store

import (
	"github.com/MKhiriev/go-pet-adopt/internal/logger"
)

// Storages bundles every repository behind a single injection point.
type Storages struct {
	UserRepository UserRepository
	PetRepository  PetRepository
}

// NewStorages wires the repositories to the given database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		PetRepository:  NewPetRepository(db, logger),
	}
}
