package services

import (
	"context"
	"strings"

	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// WordServiceProvider defines the interface for the word catalog.
type WordServiceProvider interface {
	ListWords(ctx context.Context, filter models.WordFilter) ([]models.Word, error)
	DistinctTopics(ctx context.Context) ([]string, error)
	AddWord(ctx context.Context, word models.Word) (models.Word, error)
	DeleteWord(ctx context.Context, id int64) (bool, error)
}

// WordService provides the word catalog.
type WordService struct {
	db *sqlx.DB
}

// NewWordService creates a new WordService.
func NewWordService(db *sqlx.DB) *WordService {
	return &WordService{db: db}
}

// ListWords returns the words matching every non-empty filter field, in insertion order.
func (s *WordService) ListWords(ctx context.Context, filter models.WordFilter) ([]models.Word, error) {
	var conds []string
	var args []interface{}
	if filter.Level != "" {
		conds = append(conds, "level = ?")
		args = append(args, filter.Level)
	}
	if filter.Topic != "" {
		conds = append(conds, "topic = ?")
		args = append(args, filter.Topic)
	}

	query := "SELECT id, word, translation, level, topic FROM words"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	words := []models.Word{}
	if err := s.db.SelectContext(ctx, &words, s.db.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "failed to list words")
	}
	return words, nil
}

// DistinctTopics returns every topic in the catalog once, sorted.
func (s *WordService) DistinctTopics(ctx context.Context) ([]string, error) {
	topics := []string{}
	if err := s.db.SelectContext(ctx, &topics, "SELECT DISTINCT topic FROM words ORDER BY topic"); err != nil {
		return nil, errors.Wrap(err, "failed to list topics")
	}
	return topics, nil
}

// AddWord inserts a word. Duplicates are allowed.
func (s *WordService) AddWord(ctx context.Context, word models.Word) (models.Word, error) {
	if blank(word.Word, word.Translation, word.Level, word.Topic) {
		return models.Word{}, ErrInvalidInput
	}

	row := s.db.QueryRowxContext(ctx,
		s.db.Rebind("INSERT INTO words (word, translation, level, topic) VALUES (?, ?, ?, ?) RETURNING id"),
		word.Word, word.Translation, word.Level, word.Topic)
	if err := row.Scan(&word.ID); err != nil {
		return models.Word{}, errors.Wrap(err, "failed to insert word")
	}
	return word, nil
}

// DeleteWord removes a word and reports whether it existed. Deleting a missing id is not an error.
func (s *WordService) DeleteWord(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM words WHERE id = ?"), id)
	if err != nil {
		return false, errors.Wrapf(err, "failed to delete word %d", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read affected rows")
	}
	return n > 0, nil
}
