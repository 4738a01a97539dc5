package service

import (
	"context"

	"github.com/MKhiriev/go-pet-adopt/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

type PetService interface {
	Create(ctx context.Context, owner primitive.ObjectID, request models.PetCreateRequest) (models.Pet, error)
	List(ctx context.Context, query models.PetListQuery) (models.PetListResponse, error)
	Get(ctx context.Context, id string) (models.Pet, error)
	MyPets(ctx context.Context, owner primitive.ObjectID) ([]models.Pet, error)
	Update(ctx context.Context, id string, request models.PetUpdateRequest) (models.Pet, error)
	Adopt(ctx context.Context, id string) (models.Pet, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (models.StatsResponse, error)
}
