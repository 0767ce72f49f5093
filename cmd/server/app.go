package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/socceronline/soccer-api/internal/config"
	"github.com/socceronline/soccer-api/internal/domain/pricing"
	"github.com/socceronline/soccer-api/internal/platform/postgres"
	"github.com/socceronline/soccer-api/internal/service"
	"github.com/socceronline/soccer-api/internal/service/auth"
	"github.com/socceronline/soccer-api/internal/service/transfer"
	"github.com/socceronline/soccer-api/internal/squad"
	"github.com/socceronline/soccer-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore   store.UserStore
	teamStore   store.TeamStore
	playerStore store.PlayerStore
	roleStore   store.RoleStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	userService      service.UserService
	teamService      service.TeamService
	playerService    service.PlayerService
	transferService  transfer.Service
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

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize password hashing
	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.teamStore = postgres.NewPostgresTeamStore(db, logger)
	app.playerStore = postgres.NewPostgresPlayerStore(db, logger)
	app.roleStore = postgres.NewPostgresRoleStore(db)

	// Initialize domain services
	generator := squad.NewGenerator(nil)
	policy := pricing.NewPolicy(pricing.NewDefaultParams(), nil)

	app.userService = service.NewUserService(
		db,
		app.userStore,
		app.teamStore,
		app.playerStore,
		app.roleStore,
		app.passwordHasher,
		app.passwordVerifier,
		generator,
		cfg.Game,
		logger,
	)
	app.teamService = service.NewTeamService(app.teamStore, app.playerStore, logger)
	app.playerService = service.NewPlayerService(app.playerStore, app.teamStore, logger)

	app.transferService, err = transfer.NewService(db, app.playerStore, app.teamStore, policy, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transfer service: %w", err)
	}

	logger.Info("application services initialized")
	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
