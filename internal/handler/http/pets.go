package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pet-adopt/internal/logger"
	"github.com/MKhiriev/go-pet-adopt/internal/utils"
	"github.com/MKhiriev/go-pet-adopt/models"
	"github.com/go-chi/chi/v5"
)

// listPets serves the public catalogue: filters, text search, sorting and
// pagination all come from query parameters. Unknown or malformed
// parameters are ignored rather than rejected.
func (h *Handler) listPets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := models.ParsePetListQuery(r.URL.Query())

	response, err := h.services.PetService.List(ctx, query)
	if err != nil {
		log.Err(err).Msg("pet listing failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getPet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	pet, err := h.services.PetService.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("pet lookup failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PetResponse{Pet: pet}, http.StatusOK)
}

func (h *Handler) petStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.PetService.Stats(ctx)
	if err != nil {
		log.Err(err).Msg("stats aggregation failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) createPet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated user is missing from context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.PetCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	pet, err := h.services.PetService.Create(ctx, user.ID, request)
	if err != nil {
		log.Err(err).Msg("pet creation failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PetResponse{
		Message: "pet created successfully",
		Pet:     pet,
	}, http.StatusCreated)
}

// myPets returns every listing owned by the authenticated user, including
// the already adopted ones.
func (h *Handler) myPets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("authenticated user is missing from context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	pets, err := h.services.PetService.MyPets(ctx, user.ID)
	if err != nil {
		log.Err(err).Msg("owned pets listing failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.MyPetsResponse{Pets: pets}, http.StatusOK)
}

func (h *Handler) updatePet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PetUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")

	pet, err := h.services.PetService.Update(ctx, id, request)
	if err != nil {
		log.Err(err).Str("id", id).Msg("pet update failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PetResponse{
		Message: "pet updated successfully",
		Pet:     pet,
	}, http.StatusOK)
}

// adoptPet flips the adoption flag. Repeating the call on an already
// adopted listing succeeds with the unchanged record.
func (h *Handler) adoptPet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	pet, err := h.services.PetService.Adopt(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("pet adoption failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PetResponse{
		Message: "pet adopted successfully",
		Pet:     pet,
	}, http.StatusOK)
}

func (h *Handler) deletePet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	if err := h.services.PetService.Delete(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("pet deletion failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "pet deleted successfully"}, http.StatusOK)
}
