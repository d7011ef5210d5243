package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/domain/stats"
	"github.com/phrazzld/gradebook/internal/events"
	"github.com/phrazzld/gradebook/internal/mocks"
	"github.com/phrazzld/gradebook/internal/platform/logger"
	"github.com/phrazzld/gradebook/internal/platform/memory"
	"github.com/phrazzld/gradebook/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var examDay = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

// recordingEmitter captures emitted events
type recordingEmitter struct {
	mu     sync.Mutex
	events []*events.ChangeEvent
	err    error
}

func (r *recordingEmitter) EmitEvent(ctx context.Context, event *events.ChangeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingEmitter) types() []events.ChangeType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.ChangeType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func newService(t *testing.T) (service.GradeService, *recordingEmitter) {
	t.Helper()
	l, _ := logger.NewTestLogger()
	emitter := &recordingEmitter{}
	svc, err := service.NewGradeService(memory.NewGradeStore(l), stats.NewDefaultService(), emitter, l)
	require.NoError(t, err)
	return svc, emitter
}

func TestNewGradeServiceValidatesDependencies(t *testing.T) {
	_, err := service.NewGradeService(nil, stats.NewDefaultService(), nil, nil)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = service.NewGradeService(mocks.NewMockGradeStore(), nil, nil, nil)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	svc, err := service.NewGradeService(mocks.NewMockGradeStore(), stats.NewDefaultService(), nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGradeServiceWorkedExample(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.AddGrade(ctx, "Programmazione", 30, 6, examDay, "", "")
	require.NoError(t, err)
	_, err = svc.AddGrade(ctx, "Analisi", 25, 9, examDay, "", "")
	require.NoError(t, err)
	_, err = svc.AddGrade(ctx, "Inglese", 0, 3, examDay, "", "")
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 18, summary.TotalCredits)
	assert.InDelta(t, 27.0, summary.WeightedAverage, 1e-9)
	assert.InDelta(t, 99.0, summary.GraduationProjection, 1e-9)
	assert.InDelta(t, 0.1, summary.CreditProgress, 1e-9)
}

func TestGradeServiceTranscriptUsesOneSnapshot(t *testing.T) {
	l, _ := logger.NewTestLogger()
	lists := 0
	gradeStore := &mocks.MockGradeStore{
		ListFn: func(ctx context.Context) ([]domain.Grade, error) {
			lists++
			grades := []domain.Grade{{ID: uuid.New(), SubjectName: "Analisi", Grade: 30, Credits: 6}}
			if lists > 1 {
				grades = append(grades, domain.Grade{ID: uuid.New(), SubjectName: "Fisica", Grade: 18, Credits: 12})
			}
			return grades, nil
		},
	}
	svc, err := service.NewGradeService(gradeStore, stats.NewDefaultService(), nil, l)
	require.NoError(t, err)

	grades, summary, err := svc.Transcript(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, lists)
	require.Len(t, grades, 1)
	assert.Equal(t, len(grades), summary.Count)
	assert.Equal(t, 6, summary.TotalCredits)
	assert.InDelta(t, 30.0, summary.WeightedAverage, 1e-9)

	gradeStore.ListFn = func(ctx context.Context) ([]domain.Grade, error) {
		return nil, errors.New("store down")
	}
	_, _, err = svc.Transcript(context.Background())
	assert.Error(t, err)
}

func TestGradeServiceEmptySummary(t *testing.T) {
	svc, _ := newService(t)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalCredits)
	assert.Equal(t, 0.0, summary.WeightedAverage)
	assert.Equal(t, 0.0, summary.ArithmeticAverage)
	assert.Equal(t, 0.0, summary.GraduationProjection)

	trend, err := svc.Trend(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trend)
}

func TestGradeServiceAddGetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	svc, emitter := newService(t)

	created, err := svc.AddGrade(ctx, "Sistemi operativi", 26, 9, examDay, "Conti", "")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Sistemi operativi", created.SubjectName)

	got, err := svc.GetGrade(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	newGrade := 28
	updated, err := svc.UpdateGrade(ctx, created.ID, domain.GradeUpdate{Grade: &newGrade})
	require.NoError(t, err)
	assert.Equal(t, 28, updated.Grade)
	assert.Equal(t, "Conti", updated.Professor)

	removed, err := svc.DeleteGrades(ctx, []uuid.UUID{created.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	// No resurrection: the update took effect before deletion, nothing after.
	_, err = svc.GetGrade(ctx, created.ID)
	assert.True(t, errors.Is(err, service.ErrGradeNotFound))
	_, err = svc.UpdateGrade(ctx, created.ID, domain.GradeUpdate{Grade: &newGrade})
	assert.True(t, errors.Is(err, service.ErrGradeNotFound))

	grades, err := svc.ListGrades(ctx)
	require.NoError(t, err)
	assert.Empty(t, grades)

	assert.Equal(t,
		[]events.ChangeType{events.GradeAdded, events.GradeUpdated, events.GradeDeleted},
		emitter.types())
}

func TestGradeServiceDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, emitter := newService(t)

	a, err := svc.AddGrade(ctx, "A", 20, 6, examDay, "", "")
	require.NoError(t, err)
	b, err := svc.AddGrade(ctx, "B", 22, 6, examDay, "", "")
	require.NoError(t, err)

	ids := []uuid.UUID{a.ID, uuid.New()}
	removed, err := svc.DeleteGrades(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	removed, err = svc.DeleteGrades(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	grades, err := svc.ListGrades(ctx)
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, b.ID, grades[0].ID)

	// The second, empty delete publishes nothing.
	assert.Equal(t,
		[]events.ChangeType{events.GradeAdded, events.GradeAdded, events.GradeDeleted},
		emitter.types())
}

func TestGradeServiceUpdateErrors(t *testing.T) {
	ctx := context.Background()
	svc, emitter := newService(t)

	t.Run("empty update", func(t *testing.T) {
		_, err := svc.UpdateGrade(ctx, uuid.New(), domain.GradeUpdate{})
		assert.True(t, errors.Is(err, service.ErrEmptyUpdate))
	})

	t.Run("unknown id", func(t *testing.T) {
		g := 30
		_, err := svc.UpdateGrade(ctx, uuid.New(), domain.GradeUpdate{Grade: &g})
		assert.True(t, errors.Is(err, service.ErrGradeNotFound))

		var svcErr *service.GradeServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "update_grade", svcErr.Operation)
	})

	assert.Empty(t, emitter.types(), "failed mutations publish nothing")
}

func TestGradeServiceStoreFailures(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("store unavailable")

	mockStore := &mocks.MockGradeStore{
		AddFn: func(ctx context.Context, subjectName string, grade, credits int, date time.Time, professor, notes string) (uuid.UUID, error) {
			return uuid.Nil, storeErr
		},
		ListFn: func(ctx context.Context) ([]domain.Grade, error) {
			return nil, storeErr
		},
		DeleteFn: func(ctx context.Context, ids []uuid.UUID) (int, error) {
			return 0, storeErr
		},
		GetFn: func(ctx context.Context, id uuid.UUID) (*domain.Grade, error) {
			return nil, storeErr
		},
	}
	svc, err := service.NewGradeService(mockStore, stats.NewDefaultService(), nil, nil)
	require.NoError(t, err)

	_, err = svc.AddGrade(ctx, "A", 18, 6, examDay, "", "")
	assert.True(t, errors.Is(err, storeErr))

	_, err = svc.GetGrade(ctx, uuid.New())
	assert.True(t, errors.Is(err, storeErr))
	assert.False(t, errors.Is(err, service.ErrGradeNotFound))

	_, err = svc.Summary(ctx)
	assert.True(t, errors.Is(err, storeErr))

	_, err = svc.Trend(ctx)
	assert.True(t, errors.Is(err, storeErr))

	_, err = svc.DeleteGrades(ctx, []uuid.UUID{uuid.New()})
	assert.True(t, errors.Is(err, storeErr))
}

func TestGradeServiceHandlerErrorDoesNotUndoMutation(t *testing.T) {
	ctx := context.Background()
	l, buf := logger.NewTestLogger()
	emitter := &recordingEmitter{err: errors.New("view refresh failed")}
	svc, err := service.NewGradeService(memory.NewGradeStore(l), stats.NewDefaultService(), emitter, l)
	require.NoError(t, err)

	created, err := svc.AddGrade(ctx, "A", 24, 6, examDay, "", "")
	require.NoError(t, err)

	grades, err := svc.ListGrades(ctx)
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, created.ID, grades[0].ID)
	assert.Contains(t, buf.String(), "change handler failed")
}

func TestGradeServiceWithInMemoryEmitter(t *testing.T) {
	ctx := context.Background()
	l, _ := logger.NewTestLogger()
	emitter := events.NewInMemoryEventEmitter(l)
	svc, err := service.NewGradeService(memory.NewGradeStore(l), stats.NewDefaultService(), emitter, l)
	require.NoError(t, err)

	// A subscriber re-reads the summary on every change.
	var seen []int
	unsubscribe := emitter.Subscribe(func(ctx context.Context, event *events.ChangeEvent) error {
		summary, err := svc.Summary(ctx)
		if err != nil {
			return err
		}
		seen = append(seen, summary.TotalCredits)
		return nil
	})

	a, err := svc.AddGrade(ctx, "A", 24, 6, examDay, "", "")
	require.NoError(t, err)
	_, err = svc.AddGrade(ctx, "B", 0, 3, examDay, "", "")
	require.NoError(t, err)
	_, err = svc.DeleteGrades(ctx, []uuid.UUID{a.ID})
	require.NoError(t, err)

	unsubscribe()
	_, err = svc.AddGrade(ctx, "C", 30, 12, examDay, "", "")
	require.NoError(t, err)

	assert.Equal(t, []int{6, 9, 3}, seen)
}
