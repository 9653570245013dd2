package main

import (
	"context"
	"flag"
	"os"

	"github.com/appderecho/backend/internal/bootstrap"
	"github.com/appderecho/backend/internal/config"
	"github.com/appderecho/backend/internal/pkg/logger"
	"github.com/appderecho/backend/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Could not load configuration")
		os.Exit(1)
	}

	app, err := bootstrap.New(context.Background(), cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Could not start application")
		os.Exit(1)
	}
	defer app.Close()

	srv := server.New(app.Engine, cfg.Server.Host, cfg.Server.Port)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
