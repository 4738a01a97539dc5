package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pet-adopt/internal/service"
	"github.com/MKhiriev/go-pet-adopt/internal/store"
	"github.com/MKhiriev/go-pet-adopt/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUserAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrPetNotFound:       http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes the JSON error envelope.
// Client errors carry the error text so the caller learns which field or
// record was at fault; server errors get the generic status text instead.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	utils.WriteJSONError(w, message, status)
}
