package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campushub/eventhub/internal/app/controllers"
	appMigrations "github.com/campushub/eventhub/internal/app/migrations"
	appRepos "github.com/campushub/eventhub/internal/app/repositories"
	appRoutes "github.com/campushub/eventhub/internal/app/routes"
	appServices "github.com/campushub/eventhub/internal/app/services"
	"github.com/campushub/eventhub/internal/config"
	"github.com/campushub/eventhub/internal/db"
	appMiddleware "github.com/campushub/eventhub/internal/middleware"
	pkgAuth "github.com/campushub/eventhub/internal/pkg/auth"
	"github.com/campushub/eventhub/internal/pkg/logger"
	"github.com/campushub/eventhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                  *appRepos.Repositories
	Sessions               *pkgAuth.SessionService
	AuthService            *appServices.AuthService
	EventService           *appServices.EventService
	RegistrationService    *appServices.RegistrationService
	AuthController         *appControllers.AuthController
	EventController        *appControllers.EventController
	RegistrationController *appControllers.RegistrationController
	PageController         *appControllers.PageController
	SessionMiddleware      *appMiddleware.SessionMiddleware
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the store, applies migrations and seeds defaults. The
// store file is created on first startup if absent.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*sql.DB, error) {
	lgr.Info().Str("path", cfg.Database.Path).Msg("Opening database...")
	database, err := db.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open database")
		return nil, err
	}
	handle := database.DB

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(handle)
	if err := migrator.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		handle.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(ctx, appRepos.NewUserRepository(handle), cfg, lgr); err != nil {
		// Seeding is best effort; the API can still run without it
		lgr.Error().Err(err).Msg("Failed to seed bootstrap admin, proceeding anyway...")
	}

	return handle, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware.
func BuildDependencies(cfg *config.Config, database *sql.DB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.Sessions = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		Secret:   cfg.Session.Secret,
		Lifetime: cfg.SessionLifetime(),
		Issuer:   "eventhub",
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.Users, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos.Events)
	deps.RegistrationService = appServices.NewRegistrationService(deps.Repos.Registrations)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.Sessions, cfg.Session.CookieName)

	cookie := appControllers.CookieSettings{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
	}
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Sessions, cookie, lgr)
	deps.EventController = appControllers.NewEventController(deps.EventService, lgr)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService, lgr)
	deps.PageController = appControllers.NewPageController(deps.SessionMiddleware, cfg.Server.StaticPath)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, database *sql.DB, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/health", "/metrics"},
	}))
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.Metrics())

	appRoutes.SetupRouter(router,
		database,
		deps.AuthController,
		deps.EventController,
		deps.RegistrationController,
		deps.PageController,
		deps.SessionMiddleware,
	)

	return router
}
