package main

import (
	"os"

	"github.com/yigit/university/internal/pkg/logger"
	"github.com/yigit/university/internal/server"
)

// @title University API
// @version 1.0
// @description CRUD API for students, teachers and courses.

// @BasePath /api

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
