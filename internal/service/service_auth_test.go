// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pet-adopt/internal/config"
	"github.com/MKhiriev/go-pet-adopt/internal/logger"
	"github.com/MKhiriev/go-pet-adopt/internal/store"
	"github.com/MKhiriev/go-pet-adopt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestAuthService(repo *mockUserRepository) AuthService {
	return NewAuthService(repo, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-pet-adopt-test",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}, logger.Nop())
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username:  "marie",
		Email:     "marie@example.com",
		Password:  "s3cret-password",
		FirstName: "Marie",
		LastName:  "Dubois",
		Phone:     "0601020304",
	}
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	assignedID := primitive.NewObjectID()
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "marie", user.Username)
			assert.Equal(t, "marie@example.com", user.Email)
			assert.NotEqual(t, "s3cret-password", user.Password, "password must be stored hashed")
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-password")))
			user.ID = assignedID
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), validRegisterRequest())

	require.NoError(t, err)
	assert.Equal(t, assignedID, user.ID)
}

func TestAuthService_Register_InvalidData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	request := validRegisterRequest()
	request.Email = ""

	_, err := svc.Register(context.Background(), request)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_DuplicateUser(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), validRegisterRequest())

	require.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := models.User{
		ID:       primitive.NewObjectID(),
		Username: "marie",
		Email:    "marie@example.com",
		Password: string(hash),
	}
	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "marie@example.com", email)
			return stored, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "marie@example.com",
		Password: "s3cret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{Password: string(hash)}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email:    "marie@example.com",
		Password: "not-the-password",
	})

	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// an unknown account and a wrong password must be indistinguishable
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errors.New("connection(localhost:27017) socket was unexpectedly closed")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "marie@example.com",
		Password: "s3cret-password",
	})

	require.Error(t, err)
	// an unreachable store is a server-side failure, not bad credentials
	assert.NotErrorIs(t, err, ErrWrongPassword)
	assert.Contains(t, err.Error(), "user search by email failed")
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.LoginRequest{})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// Token lifecycle
// ─────────────────────────────────────────────

func TestAuthService_CreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	user := models.User{ID: primitive.NewObjectID()}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	otherIssuer := NewAuthService(&mockUserRepository{}, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}, logger.Nop())

	token, err := otherIssuer.CreateToken(context.Background(), models.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), token.SignedString)

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ─────────────────────────────────────────────
// GetUser
// ─────────────────────────────────────────────

func TestAuthService_GetUser(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, got primitive.ObjectID) (models.User, error) {
			assert.Equal(t, id, got)
			return models.User{ID: id, Username: "marie"}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.GetUser(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "marie", user.Username)
}

func TestAuthService_GetUser_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, _ primitive.ObjectID) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.GetUser(context.Background(), primitive.NewObjectID())

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}
