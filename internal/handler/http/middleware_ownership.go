package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pet-adopt/internal/logger"
	"github.com/MKhiriev/go-pet-adopt/internal/store"
	"github.com/MKhiriev/go-pet-adopt/internal/utils"
	"github.com/go-chi/chi/v5"
)

// petOwner is an HTTP middleware that restricts listing mutations to the
// listing's owner. It must run after [Handler.auth] so the authenticated
// user is already in the request context.
//
// The middleware loads the pet addressed by the {id} path parameter and:
//   - responds 404 Not Found if no such listing exists (a malformed
//     identifier is reported the same way);
//   - responds 403 Forbidden if the listing belongs to another user;
//   - otherwise stores the loaded pet in the context under
//     [utils.PetCtxKey] so downstream handlers can reuse it without a
//     second lookup.
func (h *Handler) petOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		user, ok := utils.GetUserFromContext(ctx)
		if !ok {
			log.Error().Msg("authenticated user is missing from context")
			utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "id")
		pet, err := h.services.PetService.Get(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrPetNotFound) {
				log.Err(err).Str("id", id).Msg("pet not found")
				utils.WriteJSONError(w, store.ErrPetNotFound.Error(), http.StatusNotFound)
				return
			}
			log.Err(err).Str("id", id).Msg("unexpected error occurred during pet lookup")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if pet.Owner != user.ID {
			log.Error().
				Str("id", id).
				Str("owner", pet.Owner.Hex()).
				Str("user", user.ID.Hex()).
				Msg("user is not the owner of the pet")
			utils.WriteJSONError(w, "you are not the owner of this pet", http.StatusForbidden)
			return
		}

		ctx = context.WithValue(ctx, utils.PetCtxKey, &pet)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
