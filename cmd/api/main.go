package main

import (
	"os"

	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/logger"
	"github.com/Amaldev1010/Archin-Eventmng/internal/server"
)

// @title Event Management API
// @version 1.0
// @description API for campus event management: coordinators publish events, participants register and receive email confirmations.

// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

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

	logger.Info().Msg("Application finished gracefully")
}
