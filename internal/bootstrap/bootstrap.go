package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "coursepulse/internal/app/controllers"
	appMigrations "coursepulse/internal/app/migrations"
	appRepos "coursepulse/internal/app/repositories"
	appRoutes "coursepulse/internal/app/routes"
	appServices "coursepulse/internal/app/services"
	"coursepulse/internal/config"
	"coursepulse/internal/db"
	appMiddleware "coursepulse/internal/middleware"
	"coursepulse/internal/pkg/ai"
	"coursepulse/internal/pkg/logger"
	"coursepulse/internal/pkg/prompt"
	"coursepulse/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService     appServices.CourseService
	PostService       appServices.PostService
	SummaryService    appServices.SummaryService
	ChatService       appServices.ChatService
	CourseController  *appControllers.CourseController
	PostController    *appControllers.PostController
	SummaryController *appControllers.SummaryController
	ChatController    *appControllers.ChatController
	Repos             *appRepos.Repositories
	CodeIndex         *appServices.CourseCodeIndex
	Completer         ai.Completer
	Templates         *prompt.Loader
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Sample data in development makes the read surface usable before the
	// scraper import has run
	if strings.ToLower(cfg.Server.Mode) == "development" {
		if err := seed.CreateSampleData(context.Background(), database, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create sample data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, and controllers.
// Everything is constructed here and passed down explicitly; nothing
// reaches for process-wide state at request time.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// The code to id cache is loaded once here; courses ingested later are
	// invisible to code lookups until restart
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	codeToID, err := deps.Repos.CourseRepository.GetCodeToIDMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load course code index: %w", err)
	}
	deps.CodeIndex = appServices.NewCourseCodeIndex(codeToID)
	lgr.Info().Int("courses", deps.CodeIndex.Len()).Msg("Course code index loaded")

	deps.Templates = prompt.NewLoader(cfg.Prompts.Dir)

	deps.Completer = ai.NewOpenAIClient(ai.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Temperature: float32(cfg.OpenAI.Temperature),
	})

	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.PostService = appServices.NewPostService(deps.Repos.PostRepository, deps.Repos.CourseRepository)
	deps.SummaryService = appServices.NewSummaryService(deps.Repos.SummaryRepository, deps.Repos.CourseRepository)
	deps.ChatService = appServices.NewChatService(
		deps.CodeIndex,
		deps.Repos.CourseRepository,
		deps.Repos.PostRepository,
		deps.Repos.InteractionRepository,
		deps.Templates,
		deps.Completer,
		lgr,
	)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.PostController = appControllers.NewPostController(deps.PostService)
	deps.SummaryController = appControllers.NewSummaryController(deps.SummaryService)
	deps.ChatController = appControllers.NewChatController(deps.ChatService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	// The review frontend runs on a different origin
	router.Use(cors.Default())

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.PostController,
		deps.SummaryController,
		deps.ChatController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
