// Package main implements the entry point for the soccer API server, which
// manages fantasy-football teams, players, and the transfer market.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/socceronline/soccer-api/internal/config"
	"github.com/socceronline/soccer-api/internal/platform/logger"
	"github.com/socceronline/soccer-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up|down) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration, wires the application, and starts the HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	switch migrateCmd {
	case "":
		// Apply pending migrations on normal startup.
		if err := postgres.RunMigrations(db); err != nil {
			return err
		}
	case "up":
		return postgres.RunMigrations(db)
	case "down":
		return postgres.RollbackMigration(db)
	default:
		return fmt.Errorf("unknown migration command: %s", migrateCmd)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	router := app.setupRouter()
	return app.startHTTPServer(ctx, router)
}
