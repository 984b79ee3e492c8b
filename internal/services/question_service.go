package services

import (
	"context"
	"database/sql"

	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// QuestionServiceProvider defines the interface for the question catalog.
type QuestionServiceProvider interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
	GetQuestion(ctx context.Context, id int64) (models.Question, error)
	AddQuestion(ctx context.Context, question models.Question) (models.Question, error)
	DeleteQuestion(ctx context.Context, id int64) (bool, error)
}

// QuestionService provides the question catalog.
type QuestionService struct {
	db *sqlx.DB
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(db *sqlx.DB) *QuestionService {
	return &QuestionService{db: db}
}

const questionColumns = "id, prompt, answer, category, option1, option2, option3"

// ListQuestions returns every question in insertion order.
func (s *QuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	questions := []models.Question{}
	if err := s.db.SelectContext(ctx, &questions, "SELECT "+questionColumns+" FROM questions ORDER BY id"); err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}
	return questions, nil
}

// GetQuestion retrieves a single question by its ID.
func (s *QuestionService) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	var q models.Question
	err := s.db.GetContext(ctx, &q, s.db.Rebind("SELECT "+questionColumns+" FROM questions WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Question{}, ErrQuestionNotFound
		}
		return models.Question{}, errors.Wrapf(err, "failed to get question %d", id)
	}
	return q, nil
}

// AddQuestion inserts a question after checking that its answer is one of the options.
func (s *QuestionService) AddQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	if blank(q.Prompt, q.CorrectAnswer, q.Option1, q.Option2, q.Option3) {
		return models.Question{}, ErrInvalidInput
	}
	if !answerInOptions(q) {
		return models.Question{}, ErrInvalidQuestion
	}

	row := s.db.QueryRowxContext(ctx,
		s.db.Rebind("INSERT INTO questions (prompt, answer, category, option1, option2, option3) VALUES (?, ?, ?, ?, ?, ?) RETURNING id"),
		q.Prompt, q.CorrectAnswer, q.Category, q.Option1, q.Option2, q.Option3)
	if err := row.Scan(&q.ID); err != nil {
		return models.Question{}, errors.Wrap(err, "failed to insert question")
	}
	return q, nil
}

// DeleteQuestion removes a question and reports whether it existed. Deleting a missing id is not an error.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM questions WHERE id = ?"), id)
	if err != nil {
		return false, errors.Wrapf(err, "failed to delete question %d", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read affected rows")
	}
	return n > 0, nil
}

func answerInOptions(q models.Question) bool {
	answer := normalizeAnswer(q.CorrectAnswer)
	for _, opt := range q.Options() {
		if normalizeAnswer(opt) == answer {
			return true
		}
	}
	return false
}
