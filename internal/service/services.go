package service

import (
	"github.com/MKhiriev/go-pet-adopt/internal/config"
	"github.com/MKhiriev/go-pet-adopt/internal/logger"
	"github.com/MKhiriev/go-pet-adopt/internal/store"
)

type Services struct {
	AuthService AuthService
	PetService  PetService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.Auth, logger),
		PetService:  NewPetService(storages.PetRepository, logger),
	}
}
