package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/domain/stats"
	"github.com/phrazzld/gradebook/internal/service"
)

// errNotConfigured is returned by MockGradeService methods without a function override.
var errNotConfigured = errors.New("mock method not configured")

// MockGradeService implements service.GradeService for handler tests.
// Methods without a function override return errNotConfigured.
type MockGradeService struct {
	AddGradeFn     func(ctx context.Context, subjectName string, grade, credits int, date time.Time, professor, notes string) (*domain.Grade, error)
	GetGradeFn     func(ctx context.Context, id uuid.UUID) (*domain.Grade, error)
	ListGradesFn   func(ctx context.Context) ([]domain.Grade, error)
	UpdateGradeFn  func(ctx context.Context, id uuid.UUID, update domain.GradeUpdate) (*domain.Grade, error)
	DeleteGradesFn func(ctx context.Context, ids []uuid.UUID) (int, error)
	SummaryFn      func(ctx context.Context) (stats.Summary, error)
	TrendFn        func(ctx context.Context) ([]stats.TrendPoint, error)
	TranscriptFn   func(ctx context.Context) ([]domain.Grade, stats.Summary, error)
}

var _ service.GradeService = (*MockGradeService)(nil)

// AddGrade implements the GradeService interface
func (m *MockGradeService) AddGrade(
	ctx context.Context,
	subjectName string,
	grade, credits int,
	date time.Time,
	professor, notes string,
) (*domain.Grade, error) {
	if m.AddGradeFn != nil {
		return m.AddGradeFn(ctx, subjectName, grade, credits, date, professor, notes)
	}
	return nil, errNotConfigured
}

// GetGrade implements the GradeService interface
func (m *MockGradeService) GetGrade(ctx context.Context, id uuid.UUID) (*domain.Grade, error) {
	if m.GetGradeFn != nil {
		return m.GetGradeFn(ctx, id)
	}
	return nil, errNotConfigured
}

// ListGrades implements the GradeService interface
func (m *MockGradeService) ListGrades(ctx context.Context) ([]domain.Grade, error) {
	if m.ListGradesFn != nil {
		return m.ListGradesFn(ctx)
	}
	return nil, errNotConfigured
}

// UpdateGrade implements the GradeService interface
func (m *MockGradeService) UpdateGrade(
	ctx context.Context,
	id uuid.UUID,
	update domain.GradeUpdate,
) (*domain.Grade, error) {
	if m.UpdateGradeFn != nil {
		return m.UpdateGradeFn(ctx, id, update)
	}
	return nil, errNotConfigured
}

// DeleteGrades implements the GradeService interface
func (m *MockGradeService) DeleteGrades(ctx context.Context, ids []uuid.UUID) (int, error) {
	if m.DeleteGradesFn != nil {
		return m.DeleteGradesFn(ctx, ids)
	}
	return 0, errNotConfigured
}

// Summary implements the GradeService interface
func (m *MockGradeService) Summary(ctx context.Context) (stats.Summary, error) {
	if m.SummaryFn != nil {
		return m.SummaryFn(ctx)
	}
	return stats.Summary{}, errNotConfigured
}

// Trend implements the GradeService interface
func (m *MockGradeService) Trend(ctx context.Context) ([]stats.TrendPoint, error) {
	if m.TrendFn != nil {
		return m.TrendFn(ctx)
	}
	return nil, errNotConfigured
}

// Transcript implements the GradeService interface
func (m *MockGradeService) Transcript(ctx context.Context) ([]domain.Grade, stats.Summary, error) {
	if m.TranscriptFn != nil {
		return m.TranscriptFn(ctx)
	}
	return nil, stats.Summary{}, errNotConfigured
}
