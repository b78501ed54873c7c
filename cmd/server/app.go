package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/phrazzld/commboard-api/internal/config"
	"github.com/phrazzld/commboard-api/internal/domain/ranking"
	"github.com/phrazzld/commboard-api/internal/notify"
	"github.com/phrazzld/commboard-api/internal/platform/postgres"
	"github.com/phrazzld/commboard-api/internal/platform/redisoutbox"
	"github.com/phrazzld/commboard-api/internal/platform/webhook"
	"github.com/phrazzld/commboard-api/internal/seed"
	"github.com/phrazzld/commboard-api/internal/service"
	"github.com/phrazzld/commboard-api/internal/service/auth"
	"github.com/phrazzld/commboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore  store.UserStore
	cardStore  store.CardStore
	eventStore store.SelectionEventStore

	// Service interfaces
	jwtService       auth.JWTService
	boardService     service.BoardService
	selectionService service.SelectionService
	userService      service.UserService

	// Notification transport
	notifier    notify.Notifier
	redisClient *redis.Client
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Duration("token_lifetime", cfg.Auth.TokenLifetime))

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.cardStore = postgres.NewPostgresCardStore(db, logger)
	app.eventStore = postgres.NewPostgresSelectionEventStore(db, logger)

	// Load the default catalog on first boot
	if _, err := seed.Ensure(ctx, db, app.cardStore, logger); err != nil {
		return nil, fmt.Errorf("failed to seed card catalog: %w", err)
	}

	// Initialize the caregiver notification transport
	app.notifier, err = setupNotifier(app)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notifier: %w", err)
	}
	logger.Info("Caregiver notifier initialized", slog.String("kind", cfg.Notifier.Kind))

	params, err := ranking.NewParams(cfg.Ranking.UsageWeight)
	if err != nil {
		return nil, fmt.Errorf("invalid ranking configuration: %w", err)
	}

	app.boardService = service.NewBoardService(app.cardStore, app.eventStore, params, logger)
	app.userService = service.NewUserService(app.userStore, logger)
	app.selectionService = service.NewSelectionService(
		app.cardStore,
		app.userStore,
		app.eventStore,
		app.notifier,
		cfg.Notifier.Timeout,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupNotifier builds the configured caregiver notification transport.
func setupNotifier(app *application) (notify.Notifier, error) {
	cfg := app.config.Notifier

	switch cfg.Kind {
	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		app.redisClient = redis.NewClient(opts)
		return redisoutbox.New(app.redisClient, cfg.RedisQueue, app.logger), nil

	case "webhook":
		client := &http.Client{Timeout: cfg.Timeout}
		return webhook.New(cfg.WebhookURL, client, app.logger), nil

	default:
		return nil, fmt.Errorf("unknown notifier kind %q", cfg.Kind)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("Error closing redis connection", slog.String("error", err.Error()))
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("Application shutdown completed")
}
