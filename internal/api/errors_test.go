package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/gradebook/internal/api/shared"
	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/service"
	"github.com/phrazzld/gradebook/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"service not found", service.ErrGradeNotFound, http.StatusNotFound},
		{"wrapped service not found", service.NewGradeServiceError("update_grade", "missing", service.ErrGradeNotFound), http.StatusNotFound},
		{"store not found", store.ErrGradeNotFound, http.StatusNotFound},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"field validation without cause", domain.NewValidationError("grade", "must be a number", nil), http.StatusBadRequest},
		{"wrapped field validation", fmt.Errorf("parse: %w", domain.NewValidationError("date", "bad", domain.ErrInvalidFormat)), http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"empty update", service.ErrEmptyUpdate, http.StatusBadRequest},
		{"not a number", domain.ErrNotANumber, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "Grade not found", GetSafeErrorMessage(
		service.NewGradeServiceError("get_grade", "grade not found", service.ErrGradeNotFound)))
	assert.Equal(t, "Update must set at least one field", GetSafeErrorMessage(service.ErrEmptyUpdate))
	assert.Equal(t, "Invalid grade: must be a number",
		GetSafeErrorMessage(domain.NewValidationError("grade", "must be a number", domain.ErrNotANumber)))
	assert.Equal(t, "An unexpected error occurred",
		GetSafeErrorMessage(errors.New("open /srv/gradebook/secret.db: permission denied")))
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		defaultMsg  string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found ignores default",
			err:         service.ErrGradeNotFound,
			defaultMsg:  "Failed to get grade",
			wantStatus:  http.StatusNotFound,
			wantMessage: "Grade not found",
		},
		{
			name:        "server error uses default",
			err:         errors.New("connection to /var/run/x.sock refused"),
			defaultMsg:  "Failed to list grades",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to list grades",
		},
		{
			name:        "server error without default",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/grades", nil)

			HandleAPIError(rec, req, tc.err, tc.defaultMsg)

			assert.Equal(t, tc.wantStatus, rec.Code)
			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantMessage, body.Error)
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	tests := []struct {
		name string
		req  interface{}
		want string
	}{
		{
			name: "missing subject",
			req:  &CreateGradeRequest{Grade: "27", Credits: "6", Date: "2024-01-10"},
			want: "Invalid subject_name: required field",
		},
		{
			name: "non numeric grade",
			req:  &CreateGradeRequest{SubjectName: "Fisica", Grade: "ventisette", Credits: "6", Date: "2024-01-10"},
			want: "Invalid grade: must be a number",
		},
		{
			name: "bad date",
			req:  &CreateGradeRequest{SubjectName: "Fisica", Grade: "27", Credits: "6", Date: "10/01/2024"},
			want: "Invalid date: must be a date in YYYY-MM-DD format",
		},
		{
			name: "bad id in batch",
			req:  &DeleteGradesRequest{IDs: []string{"not-a-uuid"}},
			want: "Invalid ids[0]: must be a valid ID",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := shared.ValidateRequest(tc.req)
			require.Error(t, err)
			assert.Equal(t, tc.want, SanitizeValidationError(err))
		})
	}

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}
