package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/domain/stats"
)

// DateLayout is the wire format of grade dates.
const DateLayout = "2006-01-02"

// CreateGradeRequest defines the payload for adding a grade.
// Grade and credits arrive as text, the way a form field submits them.
type CreateGradeRequest struct {
	SubjectName string `json:"subject_name" validate:"required,max=200"`
	Grade       string `json:"grade"        validate:"required,number"`
	Credits     string `json:"credits"      validate:"required,number"`
	Date        string `json:"date"         validate:"required,datetime=2006-01-02"`
	Professor   string `json:"professor"    validate:"max=200"`
	Notes       string `json:"notes"        validate:"max=2000"`
}

// UpdateGradeRequest defines the payload for a partial grade update.
// Absent fields are left untouched.
type UpdateGradeRequest struct {
	SubjectName *string `json:"subject_name" validate:"omitempty,max=200"`
	Grade       *string `json:"grade"        validate:"omitempty,number"`
	Credits     *string `json:"credits"      validate:"omitempty,number"`
	Date        *string `json:"date"         validate:"omitempty,datetime=2006-01-02"`
	Professor   *string `json:"professor"    validate:"omitempty,max=200"`
	Notes       *string `json:"notes"        validate:"omitempty,max=2000"`
}

// DeleteGradesRequest defines the payload for the batch delete endpoint.
type DeleteGradesRequest struct {
	IDs []string `json:"ids" validate:"required,dive,uuid"`
}

// DeleteGradesResponse reports how many grades a batch delete removed.
type DeleteGradesResponse struct {
	Deleted int `json:"deleted"`
}

// GradeResponse is the wire form of a grade.
type GradeResponse struct {
	ID          string `json:"id"`
	SubjectName string `json:"subject_name"`
	Grade       int    `json:"grade"`
	PassFail    bool   `json:"pass_fail"`
	Credits     int    `json:"credits"`
	Date        string `json:"date"`
	Professor   string `json:"professor,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// TrendPointResponse is one point of the grade trend chart.
type TrendPointResponse struct {
	GradeID     string `json:"grade_id"`
	SubjectName string `json:"subject_name"`
	Date        string `json:"date"`
	Grade       int    `json:"grade"`
}

// TrendResponse wraps the chart series.
type TrendResponse struct {
	Points []TrendPointResponse `json:"points"`
}

// StatsResponse is the wire form of stats.Summary.
type StatsResponse = stats.Summary

// createGradeParams holds a CreateGradeRequest converted to domain values.
type createGradeParams struct {
	subjectName string
	grade       int
	credits     int
	date        time.Time
	professor   string
	notes       string
}

// toParams converts the validated request text into numbers and dates.
func (req *CreateGradeRequest) toParams() (createGradeParams, error) {
	subject := strings.TrimSpace(req.SubjectName)
	if subject == "" {
		return createGradeParams{}, domain.NewValidationError("subject_name", "is required", domain.ErrEmptySubjectName)
	}
	grade, err := parseNumber("grade", req.Grade)
	if err != nil {
		return createGradeParams{}, err
	}
	credits, err := parseNumber("credits", req.Credits)
	if err != nil {
		return createGradeParams{}, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return createGradeParams{}, err
	}
	return createGradeParams{
		subjectName: subject,
		grade:       grade,
		credits:     credits,
		date:        date,
		professor:   strings.TrimSpace(req.Professor),
		notes:       req.Notes,
	}, nil
}

// toUpdate converts the provided fields into a domain.GradeUpdate.
func (req *UpdateGradeRequest) toUpdate() (domain.GradeUpdate, error) {
	var update domain.GradeUpdate

	if req.SubjectName != nil {
		subject := strings.TrimSpace(*req.SubjectName)
		if subject == "" {
			return update, domain.NewValidationError("subject_name", "is required", domain.ErrEmptySubjectName)
		}
		update.SubjectName = &subject
	}
	if req.Grade != nil {
		grade, err := parseNumber("grade", *req.Grade)
		if err != nil {
			return update, err
		}
		update.Grade = &grade
	}
	if req.Credits != nil {
		credits, err := parseNumber("credits", *req.Credits)
		if err != nil {
			return update, err
		}
		update.Credits = &credits
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return update, err
		}
		update.Date = &date
	}
	if req.Professor != nil {
		professor := strings.TrimSpace(*req.Professor)
		update.Professor = &professor
	}
	if req.Notes != nil {
		notes := *req.Notes
		update.Notes = &notes
	}
	return update, nil
}

// toIDs parses the request ids.
func (req *DeleteGradesRequest) toIDs() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domain.NewValidationError("ids", "has invalid format", domain.ErrInvalidID)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseNumber(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.NewValidationError(field, "must be a number", domain.ErrNotANumber)
	}
	return n, nil
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "must be a date in YYYY-MM-DD format", domain.ErrInvalidFormat)
	}
	return t, nil
}

func gradeToResponse(g *domain.Grade) GradeResponse {
	return GradeResponse{
		ID:          g.ID.String(),
		SubjectName: g.SubjectName,
		Grade:       g.Grade,
		PassFail:    g.IsPassFail(),
		Credits:     g.Credits,
		Date:        g.Date.Format(DateLayout),
		Professor:   g.Professor,
		Notes:       g.Notes,
	}
}

func gradesToResponse(grades []domain.Grade) []GradeResponse {
	out := make([]GradeResponse, 0, len(grades))
	for i := range grades {
		out = append(out, gradeToResponse(&grades[i]))
	}
	return out
}

func trendToResponse(points []stats.TrendPoint) TrendResponse {
	out := TrendResponse{Points: make([]TrendPointResponse, 0, len(points))}
	for _, p := range points {
		out.Points = append(out.Points, TrendPointResponse{
			GradeID:     p.GradeID,
			SubjectName: p.SubjectName,
			Date:        p.Date.Format(DateLayout),
			Grade:       p.Grade,
		})
	}
	return out
}
