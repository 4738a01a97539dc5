package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pet-adopt/internal/config"
	"github.com/MKhiriev/go-pet-adopt/internal/logger"
	"github.com/MKhiriev/go-pet-adopt/internal/store"
	"github.com/MKhiriev/go-pet-adopt/internal/utils"
	"github.com/MKhiriev/go-pet-adopt/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor passed to bcrypt when hashing passwords
	// at registration time.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the request, hashes the password with bcrypt, and delegates
// persistence to the UserRepository.
//
// Returns the persisted user (with a store-assigned ID) or:
//   - ErrInvalidDataProvided (wrapped with the field-level reason) if the
//     request fails validation.
//   - A wrapped storage error if the repository call fails (e.g. email or
//     username already taken — see store.ErrUserAlreadyExists).
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := request.Validate(); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := request.User()
	user.Password = string(hash)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates the request, looks up the account by email, and compares the
// supplied password against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongPassword if the account does not exist or the password does not
//     match — the two cases are deliberately indistinguishable to the caller.
//   - A wrapped storage error if the lookup itself fails (store unreachable).
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := request.Validate(); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Error().Str("email", request.Email).Msg("no account for email")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(request.Password)); err != nil {
		log.Error().
			Str("email", request.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetUser loads the user record referenced by a validated token subject.
//
// Returns a wrapped store.ErrNoUserWasFound if the account no longer exists.
func (a *authService) GetUser(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id.Hex()).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
