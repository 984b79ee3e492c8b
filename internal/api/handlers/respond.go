package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/vocab-trainer/internal/auth"
	"github.com/isdelr/vocab-trainer/internal/services"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every handled failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// RespondAccessDenied renders an admin gate rejection. Every admin route uses it.
func RespondAccessDenied(w http.ResponseWriter, r *http.Request, err *auth.AccessDeniedError) {
	respondJSON(w, http.StatusForbidden, ErrorResponse{
		Error:   "access_denied",
		Message: "Access denied. Administrator privileges are required.",
		Action:  string(err.Action),
	})
}

// respondServiceError maps service errors to responses; anything unknown is a 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password.")
	case errors.Is(err, services.ErrDuplicateUsername):
		respondError(w, http.StatusConflict, "duplicate_username", "That username is already registered.")
	case errors.Is(err, services.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "invalid_input", "All required fields must be filled in.")
	case errors.Is(err, services.ErrInvalidQuestion):
		respondError(w, http.StatusBadRequest, "invalid_question", "The correct answer must match one of the options.")
	case errors.Is(err, services.ErrQuestionNotFound):
		respondError(w, http.StatusNotFound, "not_found", "Question not found.")
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg(msg)
		respondError(w, http.StatusInternalServerError, "internal_error", msg)
	}
}

// parseID reads the {id} URL parameter.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
