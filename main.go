package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"raycasino/config"
	"raycasino/logger"
	"raycasino/model"
)

func main() {
	flags := config.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load("", flags)
	if err != nil {
		logger.Log.Fatal(err)
	}
	log := logger.Init(cfg.Log.Level, cfg.Log.Format)
	if cfg.Source != "" {
		log.WithField("file", cfg.Source).Info("config loaded")
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	grid := model.DefaultGridMap()
	if cfg.Map.Path != "" {
		grid, err = model.LoadLevel(cfg.Map.Path)
		if err != nil {
			log.WithError(err).Fatal("load map")
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg, grid)); err != nil {
		log.Fatal(err)
	}
}
