//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"minefield/internal/app"
	"minefield/internal/core"
	"minefield/internal/field"
	"minefield/internal/session"
)

func main() {
	cfg, err := app.Load("minesweeper", os.Args[1:], nil)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logrus.Fatal(err)
	}
	log, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		logrus.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = core.NewSeed(); err != nil {
			log.Fatal(err)
		}
	}
	grid, err := field.New(cfg.Width, cfg.Height, cfg.Mines, core.NewRNG(seed))
	if err != nil {
		log.Fatal(err)
	}
	sess := session.New(grid, session.WithLogger(log))
	game := app.New(sess, *cfg, log)

	log.WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"mines":  cfg.Mines,
		"seed":   seed,
	}).Info("Welcome! Left click uncovers a cell, right click flags it, Space starts a new game.")

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("Minefield")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
