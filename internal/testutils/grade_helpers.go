package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/store"
	"github.com/stretchr/testify/require"
)

// GradeOption customizes a grade built by CreateGradeForTest.
type GradeOption func(*domain.Grade)

// WithSubject sets the subject name.
func WithSubject(name string) GradeOption {
	return func(g *domain.Grade) { g.SubjectName = name }
}

// WithGrade sets the grade value; 0 makes the record pass/fail.
func WithGrade(grade int) GradeOption {
	return func(g *domain.Grade) { g.Grade = grade }
}

// WithCredits sets the credit weight.
func WithCredits(credits int) GradeOption {
	return func(g *domain.Grade) { g.Credits = credits }
}

// WithDate sets the exam date, truncated to the calendar day.
func WithDate(date time.Time) GradeOption {
	return func(g *domain.Grade) { g.Date = domain.TruncateToDay(date) }
}

// WithProfessor sets the professor.
func WithProfessor(professor string) GradeOption {
	return func(g *domain.Grade) { g.Professor = professor }
}

// CreateGradeForTest builds a grade with test defaults: a random subject,
// grade 27, 6 credits, dated 2024-01-15.
func CreateGradeForTest(opts ...GradeOption) *domain.Grade {
	g := domain.NewGrade(
		"Subject "+uuid.New().String()[:8],
		27,
		6,
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		"",
		"",
	)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WorkedExampleGrades returns three records totalling 18 credits with a
// weighted average of 27: a 30 worth 6, a 25 worth 9 and a pass/fail worth 3.
func WorkedExampleGrades() []*domain.Grade {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	return []*domain.Grade{
		CreateGradeForTest(WithSubject("Analisi I"), WithGrade(30), WithCredits(6), WithDate(day(10))),
		CreateGradeForTest(WithSubject("Fisica"), WithGrade(25), WithCredits(9), WithDate(day(20))),
		CreateGradeForTest(WithSubject("Inglese"), WithGrade(domain.PassFailGrade), WithCredits(3), WithDate(day(25))),
	}
}

// MustAddGrades adds every grade to s in order and returns the ids the store
// assigned. The ids on the passed grades are ignored.
func MustAddGrades(ctx context.Context, t *testing.T, s store.GradeStore, grades ...*domain.Grade) []uuid.UUID {
	t.Helper()

	ids := make([]uuid.UUID, 0, len(grades))
	for _, g := range grades {
		id, err := s.Add(ctx, g.SubjectName, g.Grade, g.Credits, g.Date, g.Professor, g.Notes)
		require.NoError(t, err, "Failed to add test grade %q", g.SubjectName)
		ids = append(ids, id)
	}
	return ids
}
