package bootstrap

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/university/internal/app/controllers"
	appRepos "github.com/yigit/university/internal/app/repositories"
	appRoutes "github.com/yigit/university/internal/app/routes"
	"github.com/yigit/university/internal/config"
	"github.com/yigit/university/internal/db"
	appMiddleware "github.com/yigit/university/internal/middleware"
	"github.com/yigit/university/internal/pkg/logger"
	"github.com/yigit/university/internal/pkg/validation"
	"github.com/yigit/university/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	StudentController *appControllers.StudentController
	TeacherController *appControllers.TeacherController
	CourseController  *appControllers.CourseController
	HealthController  *appControllers.HealthController
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

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to the database, creates the schema and seeds sample data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Database, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	database, err := db.NewDatabase(cfg, logger.WithComponent("gorm"))
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Str("driver", database.Driver()).Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureCreated(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to create database schema")
		_ = database.Close()
		return nil, err
	}

	if cfg.Seed.Enabled {
		repos := appRepos.NewRepositories(database.DB)
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		if err := seed.Initialize(ctx, database.DB, repos, rng, logger.WithComponent("seed")); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed database")
			_ = database.Close()
			return nil, fmt.Errorf("database seeding failed: %w", err)
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories and controllers.
func BuildDependencies(database *db.Database, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.DB)

	deps.StudentController = appControllers.NewStudentController(deps.Repos.StudentRepository, lgr.With().Str("controller", "students").Logger())
	deps.TeacherController = appControllers.NewTeacherController(deps.Repos.TeacherRepository, lgr.With().Str("controller", "teachers").Logger())
	deps.CourseController = appControllers.NewCourseController(deps.Repos.CourseRepository, lgr.With().Str("controller", "courses").Logger())
	deps.HealthController = appControllers.NewHealthController(database, lgr)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, database *db.Database, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	validation.Setup()

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Metrics(),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
		appMiddleware.ExceptionHandler(lgr),
	)

	if cfg.IsProduction() {
		router.GET("/error", appMiddleware.ErrorPage)
	} else {
		appRoutes.SetupSwagger(router)
	}

	appRoutes.SetupRouter(router,
		database.DB,
		deps.StudentController,
		deps.TeacherController,
		deps.CourseController,
		deps.HealthController,
	)

	return router
}
