package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gradebook/internal/config"
	"github.com/phrazzld/gradebook/internal/domain/stats"
	"github.com/phrazzld/gradebook/internal/events"
	"github.com/phrazzld/gradebook/internal/platform/memory"
	"github.com/phrazzld/gradebook/internal/service"
	"github.com/phrazzld/gradebook/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	gradeStore   store.GradeStore
	statsService stats.Service
	gradeService service.GradeService

	eventEmitter *events.InMemoryEventEmitter
	unsubscribe  func()
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.statsService, err = stats.NewServiceWithParams(&stats.Params{
		GradeScale:   cfg.Degree.GradeScale,
		FinalScale:   cfg.Degree.FinalScale,
		CreditTarget: cfg.Degree.CreditTarget,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create statistics service: %w", err)
	}

	app.gradeStore = memory.NewGradeStore(logger)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	changeLog := logger.With("component", "change_log")
	app.unsubscribe = app.eventEmitter.Subscribe(func(ctx context.Context, event *events.ChangeEvent) error {
		changeLog.InfoContext(ctx, "grades changed",
			"event_id", event.ID.String(),
			"change_type", string(event.Type),
			"grade_count", len(event.GradeIDs))
		return nil
	})

	app.gradeService, err = service.NewGradeService(
		app.gradeStore,
		app.statsService,
		app.eventEmitter,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create grade service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.unsubscribe != nil {
		app.unsubscribe()
	}

	app.logger.Info("Application shutdown completed")
}
