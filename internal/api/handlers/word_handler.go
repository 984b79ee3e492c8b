package handlers

import (
	"fmt"
	"net/http"

	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/isdelr/vocab-trainer/internal/services"
	"github.com/rs/zerolog/log"
)

// WordHandler handles lessons and word catalog administration.
type WordHandler struct {
	service services.WordServiceProvider
	events  services.EventServiceProvider
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(service services.WordServiceProvider, events services.EventServiceProvider) *WordHandler {
	return &WordHandler{service: service, events: events}
}

// LessonsResponse is the filtered word listing with the topic selector values.
type LessonsResponse struct {
	Words    []models.Word `json:"words"`
	Level    string        `json:"level"`
	Category string        `json:"category"`
	Topics   []string      `json:"topics"`
}

// WordsResponse lists the catalog, with the created entry after an insert.
type WordsResponse struct {
	Created *models.Word  `json:"created,omitempty"`
	Words   []models.Word `json:"words"`
}

// Lessons lists words filtered by level and category (topic).
func (h *WordHandler) Lessons(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.WordFilter{Level: q.Get("level"), Topic: q.Get("category")}

	words, err := h.service.ListWords(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve words")
		return
	}
	topics, err := h.service.DistinctTopics(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve topics")
		return
	}

	respondJSON(w, http.StatusOK, LessonsResponse{
		Words:    words,
		Level:    filter.Level,
		Category: filter.Topic,
		Topics:   topics,
	})
}

// GetAll lists the whole word catalog for administration.
func (h *WordHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	words, err := h.service.ListWords(r.Context(), models.WordFilter{})
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve words")
		return
	}
	respondJSON(w, http.StatusOK, WordsResponse{Words: words})
}

// Create adds a word from the submitted form.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	word, err := h.service.AddWord(r.Context(), models.Word{
		Word:        r.FormValue("word"),
		Translation: r.FormValue("translation"),
		Level:       r.FormValue("level"),
		Topic:       r.FormValue("topic"),
	})
	if err != nil {
		respondServiceError(w, r, err, "Failed to create word")
		return
	}
	log.Info().Int64("word_id", word.ID).Str("word", word.Word).Msg("Word added")
	recordEvent(r, h.events, models.EventWordAdded, fmt.Sprintf("Added word %q (%s, %s)", word.Word, word.Level, word.Topic))

	words, err := h.service.ListWords(r.Context(), models.WordFilter{})
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve words")
		return
	}
	respondJSON(w, http.StatusCreated, WordsResponse{Created: &word, Words: words})
}

// Delete removes a word and returns to the word administration page.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_input", "Invalid word ID")
		return
	}
	deleted, err := h.service.DeleteWord(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err, "Failed to delete word")
		return
	}
	if deleted {
		recordEvent(r, h.events, models.EventWordDeleted, fmt.Sprintf("Deleted word %d", id))
	}
	http.Redirect(w, r, "/add_word", http.StatusSeeOther)
}
