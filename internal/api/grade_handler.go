package api

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/gradebook/internal/api/shared"
	"github.com/phrazzld/gradebook/internal/platform/logger"
	"github.com/phrazzld/gradebook/internal/redact"
	"github.com/phrazzld/gradebook/internal/report"
	"github.com/phrazzld/gradebook/internal/service"
)

// GradeHandler handles grade and statistics HTTP requests.
type GradeHandler struct {
	gradeService service.GradeService
	logger       *slog.Logger
}

// NewGradeHandler creates a new GradeHandler.
func NewGradeHandler(gradeService service.GradeService, logger *slog.Logger) *GradeHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GradeHandler")
	}

	return &GradeHandler{
		gradeService: gradeService,
		logger:       logger.With(slog.String("component", "grade_handler")),
	}
}

// ListGrades handles GET /api/grades.
func (h *GradeHandler) ListGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := h.gradeService.ListGrades(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list grades")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, gradesToResponse(grades))
}

// CreateGrade handles POST /api/grades.
func (h *GradeHandler) CreateGrade(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateGradeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		HandleValidationError(w, r, err)
		return
	}

	params, err := req.toParams()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	grade, err := h.gradeService.AddGrade(
		r.Context(),
		params.subjectName,
		params.grade,
		params.credits,
		params.date,
		params.professor,
		params.notes,
	)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add grade")
		return
	}

	log.Debug("grade created", slog.String("grade_id", grade.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, gradeToResponse(grade))
}

// GetGrade handles GET /api/grades/{id}.
func (h *GradeHandler) GetGrade(w http.ResponseWriter, r *http.Request) {
	id, ok := gradeIDOrError(w, r)
	if !ok {
		return
	}

	grade, err := h.gradeService.GetGrade(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get grade")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, gradeToResponse(grade))
}

// UpdateGrade handles PUT /api/grades/{id}.
// Only the fields present in the body are changed.
func (h *GradeHandler) UpdateGrade(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := gradeIDOrError(w, r)
	if !ok {
		return
	}

	var req UpdateGradeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.String("grade_id", id.String()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("validation error",
			slog.String("error", redact.Error(err)),
			slog.String("grade_id", id.String()))
		HandleValidationError(w, r, err)
		return
	}

	update, err := req.toUpdate()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	grade, err := h.gradeService.UpdateGrade(r.Context(), id, update)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update grade")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, gradeToResponse(grade))
}

// DeleteGrade handles DELETE /api/grades/{id}.
// Deleting an unknown id still answers 204.
func (h *GradeHandler) DeleteGrade(w http.ResponseWriter, r *http.Request) {
	id, ok := gradeIDOrError(w, r)
	if !ok {
		return
	}

	if _, err := h.gradeService.DeleteGrades(r.Context(), []uuid.UUID{id}); err != nil {
		HandleAPIError(w, r, err, "Failed to delete grade")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteGrades handles POST /api/grades/delete, removing every listed grade.
func (h *GradeHandler) DeleteGrades(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req DeleteGradesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleValidationError(w, r, err)
		return
	}

	ids, err := req.toIDs()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	removed, err := service.NewSelection(ids...).DeleteSelected(r.Context(), h.gradeService)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete grades")
		return
	}

	log.Debug("grades deleted",
		slog.Int("requested", len(ids)),
		slog.Int("removed", removed))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteGradesResponse{Deleted: removed})
}

// GetStats handles GET /api/stats.
func (h *GradeHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.gradeService.Summary(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute statistics")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatsResponse(summary))
}

// GetTrend handles GET /api/stats/trend.
func (h *GradeHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	points, err := h.gradeService.Trend(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute grade trend")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, trendToResponse(points))
}

// ExportTranscript handles GET /api/grades/export.xlsx.
func (h *GradeHandler) ExportTranscript(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	grades, summary, err := h.gradeService.Transcript(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to export transcript")
		return
	}

	// Render into a buffer first so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := report.WriteTranscript(&buf, grades, summary); err != nil {
		HandleAPIError(w, r, err, "Failed to export transcript")
		return
	}

	fileName := fmt.Sprintf("transcript_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error("failed to write transcript", slog.String("error", redact.Error(err)))
	}
}
