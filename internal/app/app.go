package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/projectmanager/internal/board"
	"github.com/thenoetrevino/projectmanager/internal/database"
	"github.com/thenoetrevino/projectmanager/internal/events"
	"github.com/thenoetrevino/projectmanager/internal/models"
	projectservice "github.com/thenoetrevino/projectmanager/internal/services/project"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db *sql.DB

	// Repository layer (direct database access)
	repo *database.Repository

	// In-memory board, the single source of truth while the process runs
	store *board.Store

	// Event system for change notifications
	eventClient events.EventPublisher

	logger *slog.Logger

	// Service layer (business logic)
	ProjectService projectservice.Service
}

// Open initializes the database at dbPath and builds an App around it
func Open(ctx context.Context, dbPath string, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application, err := New(ctx, db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return application, nil
}

// New creates a new App with all services initialized and the board loaded from db.
// The App takes ownership of db and closes it in Close.
func New(ctx context.Context, db *sql.DB, opts ...Option) (*App, error) {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.eventClient == nil {
		cfg.eventClient = events.NewBroker()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	var storeOpts []board.Option
	if cfg.clock != nil {
		storeOpts = append(storeOpts, board.WithClock(cfg.clock))
	}

	repo := database.NewRepository(db)
	store := board.New(storeOpts...)

	a := &App{
		db:             db,
		repo:           repo,
		store:          store,
		eventClient:    cfg.eventClient,
		logger:         cfg.logger,
		ProjectService: projectservice.NewService(store, repo, cfg.eventClient),
	}

	if err := a.ProjectService.Load(ctx); err != nil {
		return nil, err
	}

	a.logger.Debug("board loaded",
		"todo", store.FetchCount(models.StateToDo),
		"doing", store.FetchCount(models.StateDoing),
		"done", store.FetchCount(models.StateDone))
	return a, nil
}

// Store exposes the board store, used by surfaces that subscribe to per-state changes
func (a *App) Store() *board.Store {
	return a.store
}

// Events returns the event publisher changes are announced on
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Close releases the event publisher and the database
func (a *App) Close() error {
	if a.eventClient != nil {
		if err := a.eventClient.Close(); err != nil {
			a.logger.Error("failed to close event publisher", "error", err)
		}
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
