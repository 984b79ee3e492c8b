package services

import (
	"context"

	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const (
	defaultEventLimit = 20
	maxEventLimit     = 200
)

// EventServiceProvider defines the interface for the admin activity log.
type EventServiceProvider interface {
	CreateEvent(ctx context.Context, eventType, level, message, actor string) error
	GetRecentEvents(ctx context.Context, limit int) ([]models.Event, error)
}

// EventService records administrative changes.
type EventService struct {
	db *sqlx.DB
}

// NewEventService creates a new EventService.
func NewEventService(db *sqlx.DB) *EventService {
	return &EventService{db: db}
}

// CreateEvent logs a new event to the database.
func (s *EventService) CreateEvent(ctx context.Context, eventType, level, message, actor string) error {
	_, err := s.db.ExecContext(ctx,
		s.db.Rebind("INSERT INTO events (type, level, message, actor) VALUES (?, ?, ?, ?)"),
		eventType, level, message, actor)
	return errors.Wrap(err, "failed to record event")
}

// GetRecentEvents returns the newest events first. A non-positive limit means the default.
func (s *EventService) GetRecentEvents(ctx context.Context, limit int) ([]models.Event, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	events := []models.Event{}
	err := s.db.SelectContext(ctx, &events,
		s.db.Rebind("SELECT id, type, level, message, actor, created_at FROM events ORDER BY id DESC LIMIT ?"), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}
	return events, nil
}
