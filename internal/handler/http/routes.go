package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/pets", h.listPets)
		r.Get("/api/pets/stats/summary", h.petStats)
		r.Get("/api/pets/{id}", h.getPet)
	})

	// routes for authenticated users
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Post("/api/pets", h.createPet)
		r.Get("/api/pets/my-pets", h.myPets)
	})

	// routes for the listing owner only
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.petOwner)

		r.Put("/api/pets/{id}", h.updatePet)
		r.Delete("/api/pets/{id}", h.deletePet)
		r.Patch("/api/pets/{id}/adopt", h.adoptPet)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
