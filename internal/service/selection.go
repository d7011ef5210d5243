package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Selection is the set of grades picked for a batch operation.
// The zero value is an empty selection ready to use.
type Selection struct {
	mu    sync.Mutex
	ids   map[uuid.UUID]struct{}
	order []uuid.UUID
}

// NewSelection creates a Selection holding ids. Repeated ids are kept once.
func NewSelection(ids ...uuid.UUID) *Selection {
	s := &Selection{}
	for _, id := range ids {
		s.Select(id)
	}
	return s
}

// Select adds id to the selection. Selecting an id twice has no effect.
func (s *Selection) Select(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids == nil {
		s.ids = make(map[uuid.UUID]struct{})
	}
	if _, ok := s.ids[id]; ok {
		return
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
}

// Toggle adds id if absent or removes it if present, and reports whether
// id is selected afterwards.
func (s *Selection) Toggle(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids == nil {
		s.ids = make(map[uuid.UUID]struct{})
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// IDs returns the selected ids in the order they were selected.
func (s *Selection) IDs() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uuid.UUID, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	s.order = nil
}

// DeleteSelected deletes every selected grade through svc and clears the
// selection. On error the selection is kept so the caller can retry.
func (s *Selection) DeleteSelected(ctx context.Context, svc GradeService) (int, error) {
	ids := s.IDs()
	if len(ids) == 0 {
		return 0, nil
	}
	removed, err := svc.DeleteGrades(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.Clear()
	return removed, nil
}
