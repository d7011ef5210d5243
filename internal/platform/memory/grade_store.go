package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/store"
)

// GradeStore implements store.GradeStore on a slice kept in insertion order.
// It is safe for concurrent use.
type GradeStore struct {
	mu     sync.RWMutex
	grades []*domain.Grade
	logger *slog.Logger
}

// NewGradeStore creates an empty GradeStore.
// If logger is nil, a default logger will be used.
func NewGradeStore(logger *slog.Logger) *GradeStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &GradeStore{
		grades: make([]*domain.Grade, 0),
		logger: logger.With(slog.String("component", "grade_store")),
	}
}

// Ensure GradeStore implements store.GradeStore interface
var _ store.GradeStore = (*GradeStore)(nil)

// Add implements store.GradeStore.Add
func (s *GradeStore) Add(
	ctx context.Context,
	subjectName string,
	grade, credits int,
	date time.Time,
	professor, notes string,
) (uuid.UUID, error) {
	g := domain.NewGrade(subjectName, grade, credits, date, professor, notes)

	s.mu.Lock()
	s.grades = append(s.grades, g)
	count := len(s.grades)
	s.mu.Unlock()

	s.logger.Debug("grade added",
		slog.String("grade_id", g.ID.String()),
		slog.Int("grade_count", count))
	return g.ID, nil
}

// Get implements store.GradeStore.Get
func (s *GradeStore) Get(ctx context.Context, id uuid.UUID) (*domain.Grade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.NewGradeNotFoundError("get", id)
	}
	g := *s.grades[i]
	return &g, nil
}

// List implements store.GradeStore.List
func (s *GradeStore) List(ctx context.Context) ([]domain.Grade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Grade, len(s.grades))
	for i, g := range s.grades {
		out[i] = *g
	}
	return out, nil
}

// Update implements store.GradeStore.Update
func (s *GradeStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update domain.GradeUpdate,
) (*domain.Grade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("update of unknown grade", slog.String("grade_id", id.String()))
		return nil, store.NewGradeNotFoundError("update", id)
	}

	s.grades[i].Apply(update)
	g := *s.grades[i]

	s.logger.Debug("grade updated", slog.String("grade_id", id.String()))
	return &g, nil
}

// Delete implements store.GradeStore.Delete
func (s *GradeStore) Delete(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	remove := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		remove[id] = struct{}{}
	}

	s.mu.Lock()
	kept := s.grades[:0]
	for _, g := range s.grades {
		if _, ok := remove[g.ID]; !ok {
			kept = append(kept, g)
		}
	}
	removed := len(s.grades) - len(kept)
	// Clear the tail so dropped records can be collected.
	for i := len(kept); i < len(s.grades); i++ {
		s.grades[i] = nil
	}
	s.grades = kept
	s.mu.Unlock()

	s.logger.Debug("grades deleted",
		slog.Int("requested", len(ids)),
		slog.Int("removed", removed))
	return removed, nil
}

// Len returns the number of stored records.
func (s *GradeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.grades)
}

// indexOf returns the position of id, or -1. Callers must hold mu.
func (s *GradeStore) indexOf(id uuid.UUID) int {
	for i, g := range s.grades {
		if g.ID == id {
			return i
		}
	}
	return -1
}
