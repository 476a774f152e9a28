package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/fleetpulse/fleet_billing_app/internal/adapters/cache"
	"github.com/fleetpulse/fleet_billing_app/internal/adapters/database/pgsql"
	"github.com/fleetpulse/fleet_billing_app/internal/adapters/memory"
	"github.com/fleetpulse/fleet_billing_app/internal/adapters/ratesource"
	portsrepo "github.com/fleetpulse/fleet_billing_app/internal/core/ports/repositories"
	"github.com/fleetpulse/fleet_billing_app/internal/core/services"
	"github.com/fleetpulse/fleet_billing_app/internal/handlers"
	"github.com/fleetpulse/fleet_billing_app/internal/middleware"
	"github.com/fleetpulse/fleet_billing_app/internal/platform/config"
	"github.com/fleetpulse/fleet_billing_app/internal/utils"
	"github.com/fleetpulse/fleet_billing_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Fleet Billing API
// @version 1.0
// @description Billing and remaining-value dashboard API for a monitored server fleet.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{}

	// Node snapshot storage: PostgreSQL when configured, in-memory otherwise.
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer dbPool.Close()
		logger.Info("Database connection pool established.")

		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			logger.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}

		repos.NodeRepo = pgsql.NewPgxNodeRepository(dbPool)
	} else {
		logger.Info("Using in-memory node repository.")
		repos.NodeRepo = memory.NewNodeRepository()
	}

	// Preference storage: Redis when configured, in-memory otherwise.
	if cfg.RedisAddr != "" {
		prefRepo := cache.NewRedisPreferenceRepository(cfg.RedisAddr)
		defer prefRepo.Close()
		repos.PreferenceRepo = prefRepo
	} else {
		logger.Info("Using in-memory preference store.")
		repos.PreferenceRepo = memory.NewPreferenceRepository()
	}

	// Upstream rate providers; the cache keys entries by provider name.
	sources := []portsrepo.RateSource{
		ratesource.NewERAPISource(cfg.ERAPIBaseURL, nil),
		ratesource.NewCurrencyAPISource(cfg.CurrencyAPIBaseURL, nil),
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, sources, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	// CORS: the dashboard frontend is typically served from another origin.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Rate limiting with an in-memory store keyed by client IP.
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	// Optional analytics.
	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations from the migrations
// directory using a temporary database/sql connection.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
