package handlers

import (
	"fmt"
	"net/http"

	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/isdelr/vocab-trainer/internal/services"
	"github.com/rs/zerolog/log"
)

// AdminHandler handles account listing and provisioning.
type AdminHandler struct {
	service services.UserServiceProvider
	events  services.EventServiceProvider
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service services.UserServiceProvider, events services.EventServiceProvider) *AdminHandler {
	return &AdminHandler{service: service, events: events}
}

// UsersResponse lists accounts, with the created one after provisioning.
type UsersResponse struct {
	Created *models.User  `json:"created,omitempty"`
	Users   []models.User `json:"users"`
}

// GetUsers lists every account.
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve users")
		return
	}
	respondJSON(w, http.StatusOK, UsersResponse{Users: users})
}

// CreateUser provisions an account. The presence of is_admin grants the admin role.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	role := models.RoleStandard
	// Body only; a query string must not grant the admin role.
	if r.PostForm.Has("is_admin") {
		role = models.RoleAdmin
	}

	user, err := h.service.CreateUser(r.Context(), username, password, role)
	if err != nil {
		respondServiceError(w, r, err, "Failed to create user")
		return
	}
	log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User provisioned")
	recordEvent(r, h.events, models.EventUserCreated, fmt.Sprintf("Created %s account %q", user.Role, user.Username))

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve users")
		return
	}
	respondJSON(w, http.StatusCreated, UsersResponse{Created: &user, Users: users})
}
