package main

// Run database migrations:
//   go run ./cmd/migrate [up|down|status]

import (
	"context"
	"os"

	"glowyze-backend/internal/shared/config"
	"glowyze-backend/internal/shared/storage/db"
	"glowyze-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(cfg.LogLevel, "console", os.Stderr)
	ctx := context.Background()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer sqlDB.Close()

	switch command {
	case "up":
		err = db.RunMigrations(ctx, sqlDB)
	case "down":
		err = db.RollbackMigration(ctx, sqlDB)
	case "status":
		err = db.MigrationStatus(ctx, sqlDB)
	default:
		telemetry.Error("migrate.unknown_command", map[string]any{"command": command})
		sqlDB.Close()
		os.Exit(2)
	}
	if err != nil {
		telemetry.Error("migrate.failed", map[string]any{"command": command, "error": err.Error()})
		sqlDB.Close()
		os.Exit(1)
	}
	telemetry.Info("migrate.done", map[string]any{"command": command})
}
