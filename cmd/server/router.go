package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/gradebook/internal/api"
	apiMiddleware "github.com/phrazzld/gradebook/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	gradeHandler := api.NewGradeHandler(app.gradeService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Grade endpoints
		r.Get("/grades", gradeHandler.ListGrades)
		r.Post("/grades", gradeHandler.CreateGrade)
		r.Post("/grades/delete", gradeHandler.DeleteGrades)
		r.Get("/grades/export.xlsx", gradeHandler.ExportTranscript)
		r.Get("/grades/{id}", gradeHandler.GetGrade)
		r.Put("/grades/{id}", gradeHandler.UpdateGrade)
		r.Delete("/grades/{id}", gradeHandler.DeleteGrade)

		// Statistics endpoints
		r.Get("/stats", gradeHandler.GetStats)
		r.Get("/stats/trend", gradeHandler.GetTrend)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
