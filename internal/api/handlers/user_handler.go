package handlers

import (
	"net/http"

	"github.com/isdelr/vocab-trainer/internal/auth"
	"github.com/isdelr/vocab-trainer/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles login, registration and session lifecycle.
type UserHandler struct {
	service services.UserServiceProvider
	tokens  *auth.TokenManager
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, tokens *auth.TokenManager) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

// ViewResponse names the page a client should show.
type ViewResponse struct {
	View string `json:"view"`
}

// Index sends signed-in users home and shows everyone else the login view.
func (h *UserHandler) Index(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.IdentityFromContext(r.Context()); ok {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	respondJSON(w, http.StatusOK, ViewResponse{View: "login"})
}

// Login handles credential checks and starts a session.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	id, err := h.service.Authenticate(r.Context(), username, r.FormValue("password"))
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("Failed authentication attempt")
		respondServiceError(w, r, err, "Failed to sign in")
		return
	}

	h.startSession(w, r, id)
}

// RegisterForm shows the registration view.
func (h *UserHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ViewResponse{View: "register"})
}

// Register handles new user registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	id, err := h.service.Register(r.Context(), username, r.FormValue("password"))
	if err != nil {
		log.Info().Err(err).Str("username", username).Msg("Registration rejected")
		respondServiceError(w, r, err, "Failed to register user")
		return
	}

	h.startSession(w, r, id)
}

// Home is the landing page for signed-in users.
func (h *UserHandler) Home(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	respondJSON(w, http.StatusOK, id)
}

// Logout clears the session.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.tokens.EndSession(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *UserHandler) startSession(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	if err := h.tokens.StartSession(w, id); err != nil {
		log.Error().Err(err).Str("username", id.Username).Msg("Failed to issue session token")
		respondError(w, http.StatusInternalServerError, "internal_error", "Failed to start session")
		return
	}
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}
