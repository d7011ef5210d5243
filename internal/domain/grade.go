package domain

import (
	"time"

	"github.com/google/uuid"
)

// PassFailGrade is the grade value recorded for courses that are passed
// without a numeric score. Such records count towards credits but are left
// out of every average.
const PassFailGrade = 0

// Grade is a single exam result in the student's record.
// Records are kept in insertion order, which is also their display order.
type Grade struct {
	ID          uuid.UUID `json:"id"`
	SubjectName string    `json:"subject_name"`
	Grade       int       `json:"grade"`
	Credits     int       `json:"credits"`
	Date        time.Time `json:"date"`
	Professor   string    `json:"professor,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// NewGrade builds a Grade with a freshly generated ID.
// Values are taken as given: range checks on grade and credits are the
// caller's concern, so NewGrade never fails.
func NewGrade(
	subjectName string,
	grade, credits int,
	date time.Time,
	professor, notes string,
) *Grade {
	return &Grade{
		ID:          uuid.New(),
		SubjectName: subjectName,
		Grade:       grade,
		Credits:     credits,
		Date:        TruncateToDay(date),
		Professor:   professor,
		Notes:       notes,
	}
}

// IsPassFail reports whether the record carries no numeric score.
func (g *Grade) IsPassFail() bool {
	return g.Grade == PassFailGrade
}

// HasNumericGrade reports whether the record takes part in averages.
func (g *Grade) HasNumericGrade() bool {
	return g.Grade > PassFailGrade
}

// Apply overwrites the fields that are set in u.
func (g *Grade) Apply(u GradeUpdate) {
	if u.SubjectName != nil {
		g.SubjectName = *u.SubjectName
	}
	if u.Grade != nil {
		g.Grade = *u.Grade
	}
	if u.Credits != nil {
		g.Credits = *u.Credits
	}
	if u.Date != nil {
		g.Date = TruncateToDay(*u.Date)
	}
	if u.Professor != nil {
		g.Professor = *u.Professor
	}
	if u.Notes != nil {
		g.Notes = *u.Notes
	}
}

// GradeUpdate describes a partial update of a Grade.
// Nil fields are left untouched.
type GradeUpdate struct {
	SubjectName *string
	Grade       *int
	Credits     *int
	Date        *time.Time
	Professor   *string
	Notes       *string
}

// IsEmpty reports whether the update would change nothing.
func (u GradeUpdate) IsEmpty() bool {
	return u.SubjectName == nil &&
		u.Grade == nil &&
		u.Credits == nil &&
		u.Date == nil &&
		u.Professor == nil &&
		u.Notes == nil
}

// TruncateToDay drops the time-of-day part of t, keeping the calendar date
// as seen in t's own location, and returns it at UTC midnight.
func TruncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
