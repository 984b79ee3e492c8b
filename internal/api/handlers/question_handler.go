package handlers

import (
	"fmt"
	"net/http"

	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/isdelr/vocab-trainer/internal/services"
	"github.com/rs/zerolog/log"
)

// QuestionHandler handles question catalog administration.
type QuestionHandler struct {
	service services.QuestionServiceProvider
	events  services.EventServiceProvider
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(service services.QuestionServiceProvider, events services.EventServiceProvider) *QuestionHandler {
	return &QuestionHandler{service: service, events: events}
}

// QuestionsResponse lists the catalog, with the created entry after an insert.
type QuestionsResponse struct {
	Created   *models.Question  `json:"created,omitempty"`
	Questions []models.Question `json:"questions"`
}

// GetAll lists every question.
func (h *QuestionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.ListQuestions(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve questions")
		return
	}
	respondJSON(w, http.StatusOK, QuestionsResponse{Questions: questions})
}

// Create adds a question from the submitted form.
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	q, err := h.service.AddQuestion(r.Context(), models.Question{
		Prompt:        r.FormValue("question"),
		CorrectAnswer: r.FormValue("answer"),
		Category:      r.FormValue("category"),
		Option1:       r.FormValue("option1"),
		Option2:       r.FormValue("option2"),
		Option3:       r.FormValue("option3"),
	})
	if err != nil {
		respondServiceError(w, r, err, "Failed to create question")
		return
	}
	log.Info().Int64("question_id", q.ID).Msg("Question added")
	recordEvent(r, h.events, models.EventQuestionAdded, fmt.Sprintf("Added question %d: %s", q.ID, q.Prompt))

	questions, err := h.service.ListQuestions(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve questions")
		return
	}
	respondJSON(w, http.StatusCreated, QuestionsResponse{Created: &q, Questions: questions})
}

// Delete removes a question and returns to the question administration page.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_input", "Invalid question ID")
		return
	}
	deleted, err := h.service.DeleteQuestion(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err, "Failed to delete question")
		return
	}
	if deleted {
		recordEvent(r, h.events, models.EventQuestionDeleted, fmt.Sprintf("Deleted question %d", id))
	}
	http.Redirect(w, r, "/add_question", http.StatusSeeOther)
}
