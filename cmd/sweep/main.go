package main

import (
	"errors"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"minefield/internal/app"
	"minefield/internal/core"
	"minefield/internal/field"
	"minefield/internal/session"
)

func main() {
	cfg, err := app.Load("sweep", os.Args[1:], nil)
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
	log.WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"mines":  cfg.Mines,
		"seed":   seed,
	}).Debug("field ready")

	sess := session.New(grid, session.WithLogger(log))
	term := app.NewTerminal(sess, cfg.Mines, os.Stdout)
	if err := term.Run(os.Stdin); err != nil {
		log.Fatal(err)
	}
}
