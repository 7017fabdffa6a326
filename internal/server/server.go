package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/university/internal/bootstrap"
	"github.com/yigit/university/internal/config"
	"github.com/yigit/university/internal/db"
	"github.com/yigit/university/internal/pkg/helpers"
)

// Server holds the state for the HTTP server.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	database *db.Database
	logger   zerolog.Logger
	http     *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps := bootstrap.BuildDependencies(database, lgr)
	router := bootstrap.SetupRouter(cfg, database, deps, lgr)

	return New(cfg, router, database, lgr), nil
}

// New assembles a server from already built parts
func New(cfg *config.Config, router *gin.Engine, database *db.Database, lgr zerolog.Logger) *Server {
	return &Server{
		config:   cfg,
		router:   router,
		database: database,
		logger:   lgr,
		http: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Str("mode", s.config.Server.Mode).Msg("Starting server...")

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(osSignals)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = s.closeDatabase()
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	timeout := helpers.ParseDuration(s.config.Server.ShutdownTimeout, 10*time.Second)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var shutdownErr error

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = errors.Join(shutdownErr, err)
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if err := s.closeDatabase(); err != nil {
		shutdownErr = errors.Join(shutdownErr, err)
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownErr != nil {
		return fmt.Errorf("server shutdown completed with errors: %w", shutdownErr)
	}
	return nil
}

func (s *Server) closeDatabase() error {
	if s.database == nil {
		return nil
	}
	s.logger.Info().Msg("Closing database connection...")
	if err := s.database.Close(); err != nil {
		s.logger.Error().Err(err).Msg("Database close error")
		return err
	}
	s.database = nil
	s.logger.Info().Msg("Database connection closed.")
	return nil
}
