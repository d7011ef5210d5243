package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/store"
)

// MockGradeStore implements store.GradeStore for testing.
// Without function overrides it behaves like a small ordered in-memory store.
type MockGradeStore struct {
	AddFn    func(ctx context.Context, subjectName string, grade, credits int, date time.Time, professor, notes string) (uuid.UUID, error)
	GetFn    func(ctx context.Context, id uuid.UUID) (*domain.Grade, error)
	ListFn   func(ctx context.Context) ([]domain.Grade, error)
	UpdateFn func(ctx context.Context, id uuid.UUID, update domain.GradeUpdate) (*domain.Grade, error)
	DeleteFn func(ctx context.Context, ids []uuid.UUID) (int, error)

	// Grades backs the default implementation
	Grades []domain.Grade
	// Calls counts invocations per method name
	Calls map[string]int
}

var _ store.GradeStore = (*MockGradeStore)(nil)

// NewMockGradeStore creates a new mock store with initialized defaults
func NewMockGradeStore() *MockGradeStore {
	return &MockGradeStore{Calls: make(map[string]int)}
}

func (m *MockGradeStore) record(name string) {
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[name]++
}

// Add implements the GradeStore interface
func (m *MockGradeStore) Add(
	ctx context.Context,
	subjectName string,
	grade, credits int,
	date time.Time,
	professor, notes string,
) (uuid.UUID, error) {
	m.record("Add")
	if m.AddFn != nil {
		return m.AddFn(ctx, subjectName, grade, credits, date, professor, notes)
	}
	g := domain.NewGrade(subjectName, grade, credits, date, professor, notes)
	m.Grades = append(m.Grades, *g)
	return g.ID, nil
}

// Get implements the GradeStore interface
func (m *MockGradeStore) Get(ctx context.Context, id uuid.UUID) (*domain.Grade, error) {
	m.record("Get")
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	for i := range m.Grades {
		if m.Grades[i].ID == id {
			g := m.Grades[i]
			return &g, nil
		}
	}
	return nil, store.ErrGradeNotFound
}

// List implements the GradeStore interface
func (m *MockGradeStore) List(ctx context.Context) ([]domain.Grade, error) {
	m.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	out := make([]domain.Grade, len(m.Grades))
	copy(out, m.Grades)
	return out, nil
}

// Update implements the GradeStore interface
func (m *MockGradeStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update domain.GradeUpdate,
) (*domain.Grade, error) {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	for i := range m.Grades {
		if m.Grades[i].ID == id {
			m.Grades[i].Apply(update)
			g := m.Grades[i]
			return &g, nil
		}
	}
	return nil, store.ErrGradeNotFound
}

// Delete implements the GradeStore interface
func (m *MockGradeStore) Delete(ctx context.Context, ids []uuid.UUID) (int, error) {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ids)
	}
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := m.Grades[:0]
	for _, g := range m.Grades {
		if !drop[g.ID] {
			kept = append(kept, g)
		}
	}
	removed := len(m.Grades) - len(kept)
	m.Grades = kept
	return removed, nil
}
