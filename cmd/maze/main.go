//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"ndmaze/internal/app"
	"ndmaze/pkg/logger"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindView(flag.CommandLine)
	flag.Parse()

	logger.Init()
	log := logger.Component("main")

	settings, err := cfg.Load()
	if err != nil {
		log.WithError(err).Fatal("load settings")
	}
	game, err := app.New(cfg, settings)
	if err != nil {
		log.WithError(err).Fatal("start viewer")
	}
	defer game.Close()

	size := game.Size()
	ebiten.SetWindowTitle("ndmaze - " + settings.Maze.Seed())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W, size.H)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Error("viewer stopped")
	}
}
