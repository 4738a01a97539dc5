package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pet-adopt/internal/logger"
	"github.com/MKhiriev/go-pet-adopt/internal/service"
	"github.com/MKhiriev/go-pet-adopt/internal/store"
	"github.com/MKhiriev/go-pet-adopt/internal/utils"
	"github.com/MKhiriev/go-pet-adopt/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("user already exists")
			utils.WriteJSONError(w, store.ErrUserAlreadyExists.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Message: "user registered successfully",
		Token:   token.SignedString,
		User:    registeredUser.Summary(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("invalid email/password")
			utils.WriteJSONError(w, service.ErrWrongPassword.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", foundUser.ID.Hex()).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Message: "login successful",
		Token:   token.SignedString,
		User:    foundUser.Summary(),
	}, http.StatusOK)
}

// me returns the profile of the authenticated user. The record was loaded
// by the auth middleware, so no further lookups are needed here.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("authenticated user is missing from context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	_, _ = utils.WriteJSON(w, models.ProfileResponse{User: *user}, http.StatusOK)
}
