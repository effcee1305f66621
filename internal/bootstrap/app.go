package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"glowyze-backend/internal/advice"
	googleauth "glowyze-backend/internal/auth"
	"glowyze-backend/internal/ingredients"
	"glowyze-backend/internal/profiles"
	"glowyze-backend/internal/recommendations"
	"glowyze-backend/internal/scans"
	"glowyze-backend/internal/shared/config"
	"glowyze-backend/internal/shared/server"
	"glowyze-backend/internal/shared/storage/db"
	"glowyze-backend/internal/shared/telemetry"
	"glowyze-backend/internal/users"
)

// App holds shared dependencies and the configured router.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Engine          *recommendations.Engine
	UsersService    *users.Service
	ProfilesService *profiles.Service
	ScansService    *scans.Service
	AdviceService   *advice.Service
	GoogleAuth      *googleauth.GoogleService
}

// Build connects storage, builds services and wires routes. In dev-like
// environments a missing or unreachable database falls back to in-memory
// repositories.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if err := buildServices(app); err != nil {
		if sqlDB != nil {
			sqlDB.Close()
		}
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		UserHandler:    users.NewHandler(app.UsersService),
		ProfileHandler: profiles.NewHandler(app.ProfilesService),
		ScanHandler:    scans.NewHandler(app.ScansService),
		AdviceHandler:  advice.NewHandler(app.AdviceService),
		GoogleAuth:     app.GoogleAuth,
		Ready:          app.ready,
	})

	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func (a *App) ready() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Ping()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_storage", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil && cfg.AutoMigrate {
		if err = db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			err = fmt.Errorf("run migrations: %w", err)
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_storage", map[string]any{"reason": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildServices(app *App) error {
	var (
		userRepo    users.Repo
		profileRepo profiles.Repo
		scanRepo    scans.Repo
	)
	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		profileRepo = &profiles.PGRepo{DB: app.DB}
		scanRepo = &scans.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		profileRepo = profiles.NewMemoryRepo()
		scanRepo = scans.NewMemoryRepo()
	}

	engine, err := recommendations.NewEngine(ingredients.Default())
	if err != nil {
		return fmt.Errorf("build recommendation engine: %w", err)
	}

	app.Engine = engine
	app.UsersService = users.NewService(userRepo)
	app.ProfilesService = profiles.NewService(profileRepo)
	app.ScansService = scans.NewService(scanRepo)
	app.AdviceService = advice.NewService(engine, app.ProfilesService, app.ScansService, app.Config.DefaultLocale)
	app.GoogleAuth = googleauth.NewGoogleService(googleauth.GoogleConfig{
		ClientID:     app.Config.GoogleClientID,
		ClientSecret: app.Config.GoogleClientSecret,
		RedirectURL:  app.Config.GoogleRedirectURL,
		UIRedirect:   app.Config.UIRedirectURL,
	}, app.UsersService)

	if app.AdviceService == nil || app.GoogleAuth == nil {
		return errors.New("failed to initialize services")
	}
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
