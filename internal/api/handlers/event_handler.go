package handlers

import (
	"net/http"
	"strconv"

	"github.com/isdelr/vocab-trainer/internal/auth"
	"github.com/isdelr/vocab-trainer/internal/services"
	"github.com/rs/zerolog/log"
)

// EventHandler serves the admin activity log.
type EventHandler struct {
	service services.EventServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// GetRecent lists the most recent events; ?limit= caps the count.
func (h *EventHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := h.service.GetRecentEvents(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve events")
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// recordEvent adds an info event attributed to the signed-in user.
// A failed write is logged and never fails the request that triggered it.
func recordEvent(r *http.Request, events services.EventServiceProvider, eventType, message string) {
	if events == nil {
		return
	}
	id, _ := auth.IdentityFromContext(r.Context())
	if err := events.CreateEvent(r.Context(), eventType, "info", message, id.Username); err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("Failed to record event")
	}
}
