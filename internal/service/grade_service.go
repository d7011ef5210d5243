package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/domain/stats"
	"github.com/phrazzld/gradebook/internal/events"
	"github.com/phrazzld/gradebook/internal/platform/logger"
	"github.com/phrazzld/gradebook/internal/store"
)

// GradeService provides grade-related operations
type GradeService interface {
	// AddGrade records a new grade and returns it with its generated ID.
	// Values are stored as given.
	AddGrade(
		ctx context.Context,
		subjectName string,
		grade, credits int,
		date time.Time,
		professor, notes string,
	) (*domain.Grade, error)

	// GetGrade retrieves a grade by its ID
	GetGrade(ctx context.Context, id uuid.UUID) (*domain.Grade, error)

	// ListGrades returns all grades in insertion order
	ListGrades(ctx context.Context) ([]domain.Grade, error)

	// UpdateGrade overwrites the provided fields of a grade
	UpdateGrade(ctx context.Context, id uuid.UUID, update domain.GradeUpdate) (*domain.Grade, error)

	// DeleteGrades removes the given grades, ignoring unknown IDs, and
	// returns the number removed
	DeleteGrades(ctx context.Context, ids []uuid.UUID) (int, error)

	// Summary computes the dashboard statistics over all grades
	Summary(ctx context.Context) (stats.Summary, error)

	// Trend returns the grade-over-time chart series
	Trend(ctx context.Context) ([]stats.TrendPoint, error)

	// Transcript returns all grades and the summary computed over that same
	// snapshot, so the two always agree
	Transcript(ctx context.Context) ([]domain.Grade, stats.Summary, error)
}

// gradeServiceImpl implements the GradeService interface
type gradeServiceImpl struct {
	grades  store.GradeStore
	stats   stats.Service
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewGradeService creates a new GradeService.
// It returns an error if any of the required dependencies are nil.
// emitter may be nil, in which case no change events are published.
func NewGradeService(
	grades store.GradeStore,
	statsService stats.Service,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (GradeService, error) {
	if grades == nil {
		return nil, domain.NewValidationError("grades", "cannot be nil", domain.ErrValidation)
	}
	if statsService == nil {
		return nil, domain.NewValidationError("statsService", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &gradeServiceImpl{
		grades:  grades,
		stats:   statsService,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "grade_service")),
	}, nil
}

// AddGrade implements GradeService.AddGrade
func (s *gradeServiceImpl) AddGrade(
	ctx context.Context,
	subjectName string,
	grade, credits int,
	date time.Time,
	professor, notes string,
) (*domain.Grade, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := s.grades.Add(ctx, subjectName, grade, credits, date, professor, notes)
	if err != nil {
		log.Error("failed to add grade", slog.String("error", err.Error()))
		return nil, NewGradeServiceError("add_grade", "failed to save grade", err)
	}

	created, err := s.grades.Get(ctx, id)
	if err != nil {
		log.Error("failed to read back added grade",
			slog.String("error", err.Error()),
			slog.String("grade_id", id.String()))
		return nil, NewGradeServiceError("add_grade", "failed to read back grade", err)
	}

	log.Info("grade added",
		slog.String("grade_id", id.String()),
		slog.Int("grade", grade),
		slog.Int("credits", credits))
	s.emit(ctx, events.GradeAdded, id)
	return created, nil
}

// GetGrade implements GradeService.GetGrade
func (s *gradeServiceImpl) GetGrade(ctx context.Context, id uuid.UUID) (*domain.Grade, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	g, err := s.grades.Get(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("grade not found", slog.String("grade_id", id.String()))
			return nil, NewGradeServiceError("get_grade", "grade not found", ErrGradeNotFound)
		}
		log.Error("failed to retrieve grade",
			slog.String("error", err.Error()),
			slog.String("grade_id", id.String()))
		return nil, NewGradeServiceError("get_grade", "failed to retrieve grade", err)
	}
	return g, nil
}

// ListGrades implements GradeService.ListGrades
func (s *gradeServiceImpl) ListGrades(ctx context.Context) ([]domain.Grade, error) {
	grades, err := s.grades.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list grades", slog.String("error", err.Error()))
		return nil, NewGradeServiceError("list_grades", "failed to list grades", err)
	}
	return grades, nil
}

// UpdateGrade implements GradeService.UpdateGrade
func (s *gradeServiceImpl) UpdateGrade(
	ctx context.Context,
	id uuid.UUID,
	update domain.GradeUpdate,
) (*domain.Grade, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.IsEmpty() {
		return nil, NewGradeServiceError("update_grade", "nothing to update", ErrEmptyUpdate)
	}

	updated, err := s.grades.Update(ctx, id, update)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("update of unknown grade", slog.String("grade_id", id.String()))
			return nil, NewGradeServiceError("update_grade", "grade not found", ErrGradeNotFound)
		}
		log.Error("failed to update grade",
			slog.String("error", err.Error()),
			slog.String("grade_id", id.String()))
		return nil, NewGradeServiceError("update_grade", "failed to update grade", err)
	}

	log.Info("grade updated", slog.String("grade_id", id.String()))
	s.emit(ctx, events.GradeUpdated, id)
	return updated, nil
}

// DeleteGrades implements GradeService.DeleteGrades
func (s *gradeServiceImpl) DeleteGrades(ctx context.Context, ids []uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	removed, err := s.grades.Delete(ctx, ids)
	if err != nil {
		log.Error("failed to delete grades",
			slog.String("error", err.Error()),
			slog.Int("requested", len(ids)))
		return 0, NewGradeServiceError("delete_grades", "failed to delete grades", err)
	}

	log.Info("grades deleted",
		slog.Int("requested", len(ids)),
		slog.Int("removed", removed))
	if removed > 0 {
		s.emit(ctx, events.GradeDeleted, ids...)
	}
	return removed, nil
}

// Summary implements GradeService.Summary
func (s *gradeServiceImpl) Summary(ctx context.Context) (stats.Summary, error) {
	grades, err := s.ListGrades(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	return s.stats.Summarize(grades), nil
}

// Trend implements GradeService.Trend
func (s *gradeServiceImpl) Trend(ctx context.Context) ([]stats.TrendPoint, error) {
	grades, err := s.ListGrades(ctx)
	if err != nil {
		return nil, err
	}
	return s.stats.Trend(grades), nil
}

// Transcript implements GradeService.Transcript
func (s *gradeServiceImpl) Transcript(ctx context.Context) ([]domain.Grade, stats.Summary, error) {
	grades, err := s.ListGrades(ctx)
	if err != nil {
		return nil, stats.Summary{}, err
	}
	return grades, s.stats.Summarize(grades), nil
}

// emit publishes a change event. Handler failures are logged and never undo
// the mutation that triggered them.
func (s *gradeServiceImpl) emit(ctx context.Context, changeType events.ChangeType, ids ...uuid.UUID) {
	if s.emitter == nil {
		return
	}
	event := events.NewChangeEvent(changeType, ids...)
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("change handler failed",
			slog.String("error", err.Error()),
			slog.String("event_type", string(changeType)),
			slog.String("event_id", event.ID.String()))
	}
}
