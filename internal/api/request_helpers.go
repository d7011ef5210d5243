package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/gradebook/internal/domain"
)

// gradeIDParam is the chi URL parameter holding a grade id.
const gradeIDParam = "id"

// parseGradeID reads the grade id from the route. A missing or malformed id
// is a validation error naming the parameter.
func parseGradeID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, gradeIDParam)
	if raw == "" {
		return uuid.Nil, domain.NewValidationError(gradeIDParam, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(gradeIDParam, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}

// gradeIDOrError returns the route's grade id, or writes a 400 response and
// reports false.
func gradeIDOrError(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := parseGradeID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, false
	}
	return id, true
}
