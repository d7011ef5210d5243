package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChangeType names the kind of mutation a ChangeEvent reports.
type ChangeType string

// Possible change types
const (
	GradeAdded   ChangeType = "grade.added"
	GradeUpdated ChangeType = "grade.updated"
	GradeDeleted ChangeType = "grade.deleted"
)

// ChangeEvent tells subscribers that the grade collection changed.
// Subscribers re-read whatever state they display; the event only says
// what happened and to which records.
type ChangeEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is the kind of mutation
	Type ChangeType `json:"type"`

	// GradeIDs lists the records affected by the mutation
	GradeIDs []uuid.UUID `json:"grade_ids"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewChangeEvent creates a ChangeEvent for the given records.
func NewChangeEvent(changeType ChangeType, gradeIDs ...uuid.UUID) *ChangeEvent {
	ids := make([]uuid.UUID, len(gradeIDs))
	copy(ids, gradeIDs)

	return &ChangeEvent{
		ID:        uuid.New(),
		Type:      changeType,
		GradeIDs:  ids,
		CreatedAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that react to changes.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ChangeEvent) error
}

// HandlerFunc adapts a plain function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event *ChangeEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *ChangeEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish changes without knowing who listens.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *ChangeEvent) error
}
