package main

import (
	"errors"
	"hash/maphash"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/04pril/gridsweeper/internal/config"
	"github.com/04pril/gridsweeper/internal/game"
	"github.com/04pril/gridsweeper/internal/ui"
)

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.WithError(err).Fatal("failed to read config")
	}
	lvl, _ := cfg.Level()
	log.SetLevel(lvl)
	log.WithFields(cfg.Fields()).Info("starting")

	state, err := game.New(game.Params{
		Width:  cfg.Width,
		Height: cfg.Height,
		Bombs:  cfg.Bombs,
	}, createRand(cfg.Seed), log)
	if err != nil {
		log.WithError(err).Fatal("failed to start game")
	}

	g := ui.New(state, cfg.CellSize, cfg.Theme, log)
	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetWindowTitle("Minesweeper")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game loop stopped")
	}
}
