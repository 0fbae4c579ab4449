// Package main provides the dice server binary: an HTTP JSON service that
// parses and rolls dice notation.
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dice/internal/api"
	"github.com/cory-johannsen/dice/internal/config"
	"github.com/cory-johannsen/dice/internal/observability"
	"github.com/cory-johannsen/dice/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = defaults and DICE_ env vars")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	apiServer := api.NewServer(logger, cfg.Server.RequestTimeout)

	logger.Info("starting dice server",
		zap.String("addr", cfg.Server.Addr()),
	)

	lc := server.NewLifecycle(logger)
	lc.Add("http", server.NewHTTPService(cfg.Server.Addr(), apiServer.Routes(), cfg.Server.ShutdownTimeout))

	if err := lc.Run(context.Background()); err != nil {
		logger.Fatal("running server", zap.Error(err))
	}
}
