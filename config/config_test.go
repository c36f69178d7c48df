package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"raycasino/world"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raycasino.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width != 960 || cfg.Window.Height != 540 || cfg.Window.Scale != 3 {
		t.Fatalf("window = %+v", cfg.Window)
	}
	if cfg.Economy.Chips != world.DefaultChips || cfg.Economy.HP != world.DefaultHP {
		t.Fatalf("economy = %+v", cfg.Economy)
	}
	if cfg.Wave.AutoAdvance != world.DefaultAutoAdvance || cfg.Wave.OfferPerks {
		t.Fatalf("wave = %+v", cfg.Wave)
	}
	if len(cfg.Assets.Gun) != 2 || cfg.Assets.Gun[0] != "sprites/gun.png" {
		t.Fatalf("gun chain = %v", cfg.Assets.Gun)
	}
	if cfg.Log.Level != "info" || cfg.Source != "" {
		t.Fatalf("log = %+v source = %q", cfg.Log, cfg.Source)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
economy:
  chips: 40
wave:
  offer_perks: true
  auto_advance: 30
player:
  keyboard_turn: true
assets:
  enemy: [a.png, b.png]
`)
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Economy.Chips != 40 || cfg.Economy.HP != world.DefaultHP {
		t.Fatalf("economy = %+v", cfg.Economy)
	}
	if !cfg.Wave.OfferPerks || cfg.Wave.AutoAdvance != 30 || !cfg.Player.KeyboardTurn {
		t.Fatalf("wave = %+v player = %+v", cfg.Wave, cfg.Player)
	}
	if strings.Join(cfg.Assets.Enemy, ",") != "a.png,b.png" {
		t.Fatalf("enemy chain = %v", cfg.Assets.Enemy)
	}
	if cfg.Source != path {
		t.Fatalf("source = %q", cfg.Source)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Fatalf("missing explicit config loaded")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "economy:\n  chips: 40\n")
	t.Setenv("RAYCASINO_ECONOMY_CHIPS", "25")
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Economy.Chips != 25 {
		t.Fatalf("chips = %d, want 25", cfg.Economy.Chips)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("RAYCASINO_SEED", "7")
	fs := NewFlagSet("test")
	if err := fs.Parse([]string{"--seed=42", "--scale=2", "--log-level=debug"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := Load("", fs)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 42 || cfg.Window.Scale != 2 || cfg.Log.Level != "debug" {
		t.Fatalf("seed %d scale %v level %q", cfg.Seed, cfg.Window.Scale, cfg.Log.Level)
	}
}

func TestConfigFlagSelectsFile(t *testing.T) {
	path := writeConfig(t, "economy:\n  hp: 9\n")
	fs := NewFlagSet("test")
	if err := fs.Parse([]string{"--config", path}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := Load("", fs)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Economy.HP != 9 {
		t.Fatalf("hp = %d", cfg.Economy.HP)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero hp", "economy:\n  hp: 0\n"},
		{"negative chips", "economy:\n  chips: -1\n"},
		{"zero scale", "window:\n  scale: 0\n"},
		{"no countdown", "wave:\n  auto_advance: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body), nil); err == nil {
				t.Fatalf("invalid config accepted")
			}
		})
	}
}

func TestWorldConversion(t *testing.T) {
	cfg := Default()
	cfg.Economy.Chips = 99
	cfg.Seed = 5
	cfg.Player.KeyboardTurn = true

	w := cfg.World()
	if w.Chips != 99 || w.Seed != 5 || !w.KeyboardTurn {
		t.Fatalf("world config = %+v", w)
	}
	if w.MoveSpeed != world.DefaultConfig().MoveSpeed {
		t.Fatalf("move speed = %v", w.MoveSpeed)
	}
}
