package handlers

import (
	"net/http"
	"strconv"

	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/isdelr/vocab-trainer/internal/services"
	"github.com/pkg/errors"
)

const (
	msgEmptyPool       = "No questions available. Add some questions first."
	msgQuestionRetired = "That question is no longer available, so your answer was not graded."
)

// QuizHandler serves the quick trainer.
type QuizHandler struct {
	service services.QuizServiceProvider
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(service services.QuizServiceProvider) *QuizHandler {
	return &QuizHandler{service: service}
}

// QuizQuestion is a question as shown to the learner; the answer is withheld.
type QuizQuestion struct {
	ID       int64  `json:"id"`
	Prompt   string `json:"question"`
	Category string `json:"category"`
}

// QuizView is one round of the quick trainer.
type QuizView struct {
	Question *QuizQuestion      `json:"question"`
	Options  []string           `json:"options"`
	Feedback *services.Feedback `json:"feedback,omitempty"`
	Message  string             `json:"message,omitempty"`
}

// Show renders a random question.
func (h *QuizHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, QuizView{})
}

// Answer grades the answer to the question that was displayed, then renders the next one.
// The form carries question_id so grading never re-rolls the question.
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var view QuizView

	questionID, err := strconv.ParseInt(r.FormValue("question_id"), 10, 64)
	if err != nil {
		view.Message = msgQuestionRetired
		h.render(w, r, view)
		return
	}

	feedback, err := h.service.Submit(r.Context(), questionID, r.FormValue("user_answer"))
	switch {
	case errors.Is(err, services.ErrQuestionNotFound):
		view.Message = msgQuestionRetired
	case err != nil:
		respondServiceError(w, r, err, "Failed to grade answer")
		return
	default:
		view.Feedback = &feedback
	}
	h.render(w, r, view)
}

func (h *QuizHandler) render(w http.ResponseWriter, r *http.Request, view QuizView) {
	view.Options = []string{}

	q, err := h.service.NextQuestion(r.Context())
	switch {
	case errors.Is(err, services.ErrEmptyPool):
		view.Message = msgEmptyPool
	case err != nil:
		respondServiceError(w, r, err, "Failed to select a question")
		return
	default:
		view.Question = toQuizQuestion(q)
		view.Options = q.Options()
	}
	respondJSON(w, http.StatusOK, view)
}

func toQuizQuestion(q models.Question) *QuizQuestion {
	return &QuizQuestion{ID: q.ID, Prompt: q.Prompt, Category: q.Category}
}
