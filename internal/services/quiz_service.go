package services

import (
	"context"
	"math/rand"

	"github.com/isdelr/vocab-trainer/internal/models"
)

// Feedback is the outcome of a quiz answer.
type Feedback struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer,omitempty"` // set only when incorrect
}

// QuizServiceProvider defines the interface for the quiz engine.
type QuizServiceProvider interface {
	NextQuestion(ctx context.Context) (models.Question, error)
	Evaluate(question models.Question, submitted string) Feedback
	Submit(ctx context.Context, questionID int64, submitted string) (Feedback, error)
}

// QuizService selects quiz questions and grades answers.
type QuizService struct {
	questions QuestionServiceProvider
	intn      func(n int) int
}

// NewQuizService creates a new QuizService. A nil intn uses math/rand.
func NewQuizService(questions QuestionServiceProvider, intn func(n int) int) *QuizService {
	if intn == nil {
		intn = rand.Intn
	}
	return &QuizService{questions: questions, intn: intn}
}

// NextQuestion picks uniformly at random from the current question set.
func (s *QuizService) NextQuestion(ctx context.Context) (models.Question, error) {
	all, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return models.Question{}, err
	}
	if len(all) == 0 {
		return models.Question{}, ErrEmptyPool
	}
	return all[s.intn(len(all))], nil
}

// Evaluate compares the answer to the question ignoring case and surrounding whitespace.
// An empty answer is always incorrect.
func (s *QuizService) Evaluate(question models.Question, submitted string) Feedback {
	answer := normalizeAnswer(submitted)
	if answer != "" && answer == normalizeAnswer(question.CorrectAnswer) {
		return Feedback{Correct: true}
	}
	return Feedback{Correct: false, CorrectAnswer: question.CorrectAnswer}
}

// Submit grades an answer against the question the user was shown.
func (s *QuizService) Submit(ctx context.Context, questionID int64, submitted string) (Feedback, error) {
	q, err := s.questions.GetQuestion(ctx, questionID)
	if err != nil {
		return Feedback{}, err
	}
	return s.Evaluate(q, submitted), nil
}
