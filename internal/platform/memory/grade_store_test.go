package memory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *GradeStore {
	return NewGradeStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var examDay = time.Date(2024, time.September, 16, 0, 0, 0, 0, time.UTC)

func TestGradeStoreAddAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	first, err := s.Add(ctx, "Algebra", 27, 6, examDay, "Neri", "")
	require.NoError(t, err)
	second, err := s.Add(ctx, "Inglese", 0, 3, examDay, "", "idoneità")
	require.NoError(t, err)
	third, err := s.Add(ctx, "Basi di dati", 30, 9, examDay, "", "")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, second, third)

	grades, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, grades, 3)
	assert.Equal(t, []uuid.UUID{first, second, third},
		[]uuid.UUID{grades[0].ID, grades[1].ID, grades[2].ID},
		"list keeps insertion order")
	assert.Equal(t, "Inglese", grades[1].SubjectName)
	assert.Equal(t, 0, grades[1].Grade)
	assert.Equal(t, "idoneità", grades[1].Notes)
	assert.Equal(t, 3, s.Len())
}

func TestGradeStoreAddDoesNotReject(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	id, err := s.Add(ctx, "", 99, 0, time.Time{}, "", "")
	require.NoError(t, err)

	g, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 99, g.Grade)
}

func TestGradeStoreListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	id, err := s.Add(ctx, "Algebra", 27, 6, examDay, "", "")
	require.NoError(t, err)

	grades, err := s.List(ctx)
	require.NoError(t, err)
	grades[0].Grade = 18

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	got.Credits = 100

	again, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 27, again.Grade)
	assert.Equal(t, 6, again.Credits)
}

func TestGradeStoreGetNotFound(t *testing.T) {
	s := newTestStore()

	g, err := s.Get(context.Background(), uuid.New())
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, store.ErrGradeNotFound))
}

func TestGradeStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	id, err := s.Add(ctx, "Algebra", 24, 6, examDay, "Neri", "")
	require.NoError(t, err)
	other, err := s.Add(ctx, "Fisica", 22, 6, examDay, "", "")
	require.NoError(t, err)

	newGrade := 29
	newProf := "Gialli"
	updated, err := s.Update(ctx, id, domain.GradeUpdate{Grade: &newGrade, Professor: &newProf})
	require.NoError(t, err)
	assert.Equal(t, 29, updated.Grade)
	assert.Equal(t, "Gialli", updated.Professor)
	assert.Equal(t, "Algebra", updated.SubjectName)

	grades, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, grades[0].ID, "update happens in place")
	assert.Equal(t, 29, grades[0].Grade)
	assert.Equal(t, other, grades[1].ID)
	assert.Equal(t, 22, grades[1].Grade)
}

func TestGradeStoreUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	_, err := s.Add(ctx, "Algebra", 24, 6, examDay, "", "")
	require.NoError(t, err)

	g := 30
	updated, err := s.Update(ctx, uuid.New(), domain.GradeUpdate{Grade: &g})
	assert.Nil(t, updated)
	assert.True(t, store.IsNotFoundError(err))
	assert.Equal(t, 1, s.Len())
}

func TestGradeStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	a, _ := s.Add(ctx, "A", 18, 6, examDay, "", "")
	b, _ := s.Add(ctx, "B", 19, 6, examDay, "", "")
	c, _ := s.Add(ctx, "C", 20, 6, examDay, "", "")
	d, _ := s.Add(ctx, "D", 21, 6, examDay, "", "")

	removed, err := s.Delete(ctx, []uuid.UUID{b, d, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, 2, removed, "unknown ids are ignored")

	grades, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, grades, 2)
	assert.Equal(t, a, grades[0].ID)
	assert.Equal(t, c, grades[1].ID)
}

func TestGradeStoreDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	a, _ := s.Add(ctx, "A", 18, 6, examDay, "", "")
	b, _ := s.Add(ctx, "B", 19, 6, examDay, "", "")

	removed, err := s.Delete(ctx, []uuid.UUID{a})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	afterFirst, _ := s.List(ctx)

	removed, err = s.Delete(ctx, []uuid.UUID{a})
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	afterSecond, _ := s.List(ctx)
	assert.Equal(t, afterFirst, afterSecond)
	require.Len(t, afterSecond, 1)
	assert.Equal(t, b, afterSecond[0].ID)

	removed, err = s.Delete(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestGradeStoreNoResurrection(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	id, err := s.Add(ctx, "Algebra", 24, 6, examDay, "", "")
	require.NoError(t, err)

	g := 28
	updated, err := s.Update(ctx, id, domain.GradeUpdate{Grade: &g})
	require.NoError(t, err)
	assert.Equal(t, 28, updated.Grade)

	removed, err := s.Delete(ctx, []uuid.UUID{id})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = s.Update(ctx, id, domain.GradeUpdate{Grade: &g})
	assert.True(t, errors.Is(err, store.ErrGradeNotFound), "update after delete must not recreate the record")

	grades, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, grades)
}

func TestGradeStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id, err := s.Add(ctx, "course", 18+n%13, 6, examDay, "", "")
			assert.NoError(t, err)
			_, _ = s.List(ctx)
			if n%2 == 0 {
				_, err = s.Delete(ctx, []uuid.UUID{id})
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, s.Len())
}
