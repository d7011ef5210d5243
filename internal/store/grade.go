package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/gradebook/internal/domain"
)

// GradeStore holds the ordered collection of grade records.
//
// Implementations store values as given and never reject a record on
// content; callers are expected to have checked their input. Insertion order
// is preserved and is the order List returns.
type GradeStore interface {
	// Add creates a record with a freshly generated ID, appends it to the
	// collection and returns the new ID.
	Add(
		ctx context.Context,
		subjectName string,
		grade, credits int,
		date time.Time,
		professor, notes string,
	) (uuid.UUID, error)

	// Get returns a copy of the record with the given ID.
	// Returns ErrGradeNotFound if it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Grade, error)

	// List returns copies of all records in insertion order.
	List(ctx context.Context) ([]domain.Grade, error)

	// Update overwrites the provided fields of the record in place and
	// returns the updated copy. Returns ErrGradeNotFound if the ID is absent.
	Update(ctx context.Context, id uuid.UUID, update domain.GradeUpdate) (*domain.Grade, error)

	// Delete removes every record whose ID is in ids and reports how many
	// were removed. Unknown IDs are ignored, so calling Delete twice with the
	// same IDs has the same effect as calling it once.
	Delete(ctx context.Context, ids []uuid.UUID) (int, error)
}
