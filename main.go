package main

import (
	"os"

	"github.com/golangdaddy/gatedrive/pkg/assets"
	"github.com/golangdaddy/gatedrive/pkg/config"
	"github.com/golangdaddy/gatedrive/pkg/game"
	"github.com/golangdaddy/gatedrive/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a JSON, YAML or TOML config file")
	debug := pflag.Bool("debug", false, "draw the car's collision outline")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog := logging.New("info", os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	if *debug {
		cfg.Debug.Outline = true
	}

	log := logging.New(cfg.LogLevel, os.Stderr)

	// sprites are required; there is nothing to draw or collide without them
	sprites, err := assets.Load(cfg.Assets)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load assets")
	}

	g, err := game.NewGame(cfg, sprites, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start session")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
	log.Info().Msg("bye")
}
