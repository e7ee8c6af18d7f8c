package main

import (
	"context"
	"os"

	"github.com/desertthunder/songday/internal/services"
	"github.com/desertthunder/songday/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var catalog services.Catalog
	if config.Credentials.Spotify.ClientID != "" && config.Credentials.Spotify.ClientSecret != "" {
		if svc, err := services.NewSpotifyService(
			config.Credentials.Spotify.ClientID,
			config.Credentials.Spotify.ClientSecret,
		); err == nil {
			catalog = svc
		}
	}

	enricher := services.NewYouTubeService(config.Credentials.YouTube.ProxyURL)

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Catalog:  catalog,
		Enricher: enricher,
		Logger:   logger,
	})

	app := &cli.Command{
		Name:     "songday",
		Usage:    "Schedule one song per day from a Spotify playlist",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
