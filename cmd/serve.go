package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/genie/internal/server"
	"github.com/desertthunder/genie/internal/services"
	"github.com/desertthunder/genie/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve starts the relay and blocks until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.IsSet("host") {
		config.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		config.Server.Port = int(cmd.Int("port"))
	}
	if cmd.IsSet("debug") {
		config.Server.Debug = cmd.Bool("debug")
	}

	if err := config.Validate(); err != nil {
		return err
	}

	if config.Server.Debug {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	spotify := services.NewSpotifyClient(services.SpotifyOpts{
		BaseURL:   config.Spotify.BaseURL,
		Timeout:   config.Spotify.RequestTimeout(),
		RateLimit: config.Spotify.RateLimit,
		Transport: r.transport,
		Logger:    r.logger,
	})

	relay := server.NewRelayHandler(spotify, server.NewTokenSlot(), r.logger)
	router := server.NewRelayRouter(relay, config.CORS, r.logger)
	srv := server.NewServer(config.Server.Addr(), router, config.Server.ShutdownGrace(), r.logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.logger.Debug("relaying to upstream", "base_url", config.Spotify.BaseURL, "timeout", config.Spotify.RequestTimeout())
	return srv.Start(ctx)
}
