// Command headless runs the game loop without a window. A scripted bot aims,
// shoots, reloads and starts waves so balance and stability can be checked
// from a terminal or CI.
package main

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"raycasino/casino"
	"raycasino/config"
	"raycasino/engine"
	"raycasino/logger"
	"raycasino/model"
	"raycasino/world"
)

const tick = time.Second / 60

type report struct {
	Frames   int
	Restarts int
	MaxWave  int
	Score    int
	Chips    int
}

func main() {
	flags := config.NewFlagSet("headless")
	frames := flags.Int("frames", 3600, "frames to simulate")
	out := flags.String("png", "", "write the last rendered frame to this file")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *frames <= 0 {
		fmt.Fprintln(os.Stderr, "error: --frames must be > 0")
		os.Exit(2)
	}

	cfg, err := config.Load("", flags)
	if err != nil {
		logger.Log.Fatal(err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	log := logger.Component("headless")

	grid := model.DefaultGridMap()
	if cfg.Map.Path != "" {
		if grid, err = model.LoadLevel(cfg.Map.Path); err != nil {
			log.WithError(err).Fatal("load map")
		}
	}

	renderer := engine.NewRenderer(grid, engine.LogicalWidth, engine.LogicalHeight)
	rep := run(cfg, grid, renderer, *frames, log)

	log.WithFields(logrus.Fields{
		"frames":   rep.Frames,
		"restarts": rep.Restarts,
		"max_wave": rep.MaxWave,
		"score":    rep.Score,
		"chips":    rep.Chips,
	}).Info("simulation finished")

	if *out != "" {
		if err := writePNG(*out, renderer.Frame); err != nil {
			log.WithError(err).Fatal("write frame")
		}
		log.WithField("file", *out).Info("frame written")
	}
}

// run steps a bot-driven state for n frames on a synthetic 60Hz clock.
func run(cfg *config.Config, grid *model.GridMap, renderer *engine.Renderer, n int, log *logrus.Entry) report {
	wcfg := cfg.World()
	wcfg.Logger = log
	state := world.New(grid, model.DefaultTables(), wcfg)
	state.SetMounter(casino.NewRegistry(log).Mount)

	now := time.Unix(0, 0)
	clock := world.NewClock(func() time.Time {
		now = now.Add(tick)
		return now
	})
	driver := world.NewDriver(state, clock, func(s *world.State) {
		s.RenderScene(renderer, nil)
	})

	rep := report{}
	wave := state.Wave.Number
	for i := 0; i < n; i++ {
		in := botInput(state)
		if in.Restart {
			rep.Restarts++
		}
		driver.Step(in)

		if state.Wave.Number != wave {
			wave = state.Wave.Number
			log.WithFields(logrus.Fields{
				"frame": i,
				"wave":  wave,
				"chips": state.Chips,
				"hp":    state.HP,
			}).Debug("wave started")
		}
		if wave > rep.MaxWave {
			rep.MaxWave = wave
		}
	}
	rep.Frames = driver.Frames()
	rep.Score = state.Score
	rep.Chips = state.Chips
	return rep
}

func writePNG(path string, frame *engine.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
