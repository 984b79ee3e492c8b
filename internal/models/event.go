package models

import "time"

// Event types recorded for administrative changes.
const (
	EventWordAdded       = "word.added"
	EventWordDeleted     = "word.deleted"
	EventQuestionAdded   = "question.added"
	EventQuestionDeleted = "question.deleted"
	EventUserCreated     = "user.created"
	EventAdminBootstrap  = "user.bootstrap"
)

// Event represents an entry in the admin activity log.
type Event struct {
	ID        int64     `json:"id" db:"id"`
	Type      string    `json:"type" db:"type"`   // e.g., "word.added"
	Level     string    `json:"level" db:"level"` // "info" or "warn"
	Message   string    `json:"message" db:"message"`
	Actor     string    `json:"actor,omitempty" db:"actor"` // Empty for system events
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
