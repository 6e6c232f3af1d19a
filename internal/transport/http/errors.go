package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/light-bringer/marketline-service/internal/app/market/domain"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// writeDomainError maps domain errors to HTTP status codes: not-found
// lookups to 404, validation failures to 400, illegal status
// transitions to 409, everything else to 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrSameStatus),
		errors.Is(err, domain.ErrAlreadySold),
		errors.Is(err, domain.ErrAlreadyCancelled):
		writeError(w, http.StatusConflict, err.Error())

	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
