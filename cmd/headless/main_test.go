package main

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"raycasino/config"
	"raycasino/engine"
	"raycasino/logger"
	"raycasino/model"
	"raycasino/world"
)

func TestAngleTo(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		ex    float64
		ey    float64
		want  float64
	}{
		{"ahead", 0, 5, 2, 0},
		{"left quarter", 0, 2, 5, math.Pi / 2},
		{"right quarter", 0, 2, -1, -math.Pi / 2},
		{"wraps past pi", 3 * math.Pi / 4, 2, -1, 3 * math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.NewPose(2, 2, tt.angle)
			e := &model.Enemy{Position: geom.Vector2{X: tt.ex, Y: tt.ey}}
			if got := angleTo(p, e); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("angleTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func newState(t *testing.T) *world.State {
	t.Helper()
	cfg := config.Default().World()
	cfg.Seed = 3
	return world.New(model.DefaultGridMap(), model.DefaultTables(), cfg)
}

func TestBotRestartsAfterDefeat(t *testing.T) {
	s := newState(t)
	s.HP = 0
	s.Update(0.016, world.Input{})
	if s.Mode().Reason != world.ReasonDefeat {
		t.Fatalf("mode = %v, want defeat", s.Mode())
	}
	if in := botInput(s); !in.Restart {
		t.Fatalf("bot did not restart: %+v", in)
	}
}

func TestBotReloadsWhenDry(t *testing.T) {
	s := newState(t)
	s.Weapon.Ammo = 0
	in := botInput(s)
	if !in.Reload || in.Fire {
		t.Fatalf("input = %+v, want reload without fire", in)
	}
}

func TestBotFiresWhenAimed(t *testing.T) {
	s := newState(t)
	if len(s.Enemies) == 0 {
		t.Fatal("no enemies spawned")
	}
	e := nearest(s)
	s.Player.Angle += angleTo(s.Player, e)

	in := botInput(s)
	if !in.Fire {
		t.Fatalf("bot did not fire at %v", e.Position)
	}
	if math.Abs(in.LookX) > 1e-6 {
		t.Fatalf("LookX = %v, want ~0 when aimed", in.LookX)
	}
}

func TestRunAndWritePNG(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11
	grid := model.DefaultGridMap()
	r := engine.NewRenderer(grid, engine.LogicalWidth, engine.LogicalHeight)

	rep := run(cfg, grid, r, 600, logger.Component("test"))
	if rep.Frames != 600 {
		t.Fatalf("frames = %d, want 600", rep.Frames)
	}
	if rep.MaxWave < 1 {
		t.Fatalf("max wave = %d", rep.MaxWave)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := writePNG(path, r.Frame); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != engine.LogicalWidth || b.Dy() != engine.LogicalHeight {
		t.Fatalf("png bounds = %v", b)
	}
}
