package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// HealthHandler reports whether the database is reachable.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check pings the database.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("Health check failed")
		respondError(w, http.StatusServiceUnavailable, "unavailable", "Database connection failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
