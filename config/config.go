package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"raycasino/engine"
	"raycasino/world"
)

const (
	envPrefix = "RAYCASINO"
	fileName  = "raycasino"
)

type Window struct {
	Width  int     `mapstructure:"width"`
	Height int     `mapstructure:"height"`
	Scale  float64 `mapstructure:"scale"`
	Title  string  `mapstructure:"title"`
}

type Player struct {
	X            float64 `mapstructure:"x"`
	Y            float64 `mapstructure:"y"`
	Angle        float64 `mapstructure:"angle"`
	MoveSpeed    float64 `mapstructure:"move_speed"`
	TurnSpeed    float64 `mapstructure:"turn_speed"`
	SensitivityX float64 `mapstructure:"sensitivity_x"`
	SensitivityY float64 `mapstructure:"sensitivity_y"`
	KeyboardTurn bool    `mapstructure:"keyboard_turn"`
}

type Economy struct {
	Chips int `mapstructure:"chips"`
	HP    int `mapstructure:"hp"`
}

type Wave struct {
	AutoAdvance float64 `mapstructure:"auto_advance"`
	OfferPerks  bool    `mapstructure:"offer_perks"`
}

type Map struct {
	// Path is a text or PNG level. Empty uses the built-in map.
	Path string `mapstructure:"path"`
}

// Assets lists fallback chains, tried in order.
type Assets struct {
	Gun   []string `mapstructure:"gun"`
	Enemy []string `mapstructure:"enemy"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Window  Window  `mapstructure:"window"`
	Player  Player  `mapstructure:"player"`
	Economy Economy `mapstructure:"economy"`
	Wave    Wave    `mapstructure:"wave"`
	Map     Map     `mapstructure:"map"`
	Assets  Assets  `mapstructure:"assets"`
	Log     Log     `mapstructure:"log"`
	Seed    int64   `mapstructure:"seed"`

	// Source is the config file that was read, if any.
	Source string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	w := world.DefaultConfig()

	v.SetDefault("window.width", engine.LogicalWidth*3)
	v.SetDefault("window.height", engine.LogicalHeight*3)
	v.SetDefault("window.scale", 3.0)
	v.SetDefault("window.title", "Raycasino")

	v.SetDefault("player.x", w.StartX)
	v.SetDefault("player.y", w.StartY)
	v.SetDefault("player.angle", w.StartAngle)
	v.SetDefault("player.move_speed", w.MoveSpeed)
	v.SetDefault("player.turn_speed", w.TurnSpeed)
	v.SetDefault("player.sensitivity_x", w.SensitivityX)
	v.SetDefault("player.sensitivity_y", w.SensitivityY)
	v.SetDefault("player.keyboard_turn", w.KeyboardTurn)

	v.SetDefault("economy.chips", w.Chips)
	v.SetDefault("economy.hp", w.HP)

	v.SetDefault("wave.auto_advance", w.AutoAdvance)
	v.SetDefault("wave.offer_perks", w.OfferPerks)

	v.SetDefault("map.path", "")

	v.SetDefault("assets.gun", []string{"sprites/gun.png", "sprites/New Piskel-1.png.png"})
	v.SetDefault("assets.enemy", []string{"sprites/enemy.png"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("seed", 0)
}

// NewFlagSet declares the command line flags Load understands.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "config file (default ./raycasino.yaml or ~/.config/raycasino/raycasino.yaml)")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
	fs.String("map", "", "level file, .txt grid or .png")
	fs.Float64("scale", 3, "render scale over the 320x180 frame")
	return fs
}

var flagKeys = map[string]string{
	"log-level": "log.level",
	"seed":      "seed",
	"map":       "map.path",
	"scale":     "window.scale",
}

// Default returns the configuration with no file, env or flags applied.
func Default() *Config {
	cfg, err := load(viper.New(), "", nil, false)
	if err != nil {
		panic(fmt.Sprintf("config: defaults do not decode: %v", err))
	}
	return cfg
}

// Load reads defaults, then the config file, then RAYCASINO_* env vars, then
// flags. An explicit path must exist; the default search paths may not.
// flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	if path == "" && flags != nil {
		if f := flags.Lookup("config"); f != nil {
			path = f.Value.String()
		}
	}
	return load(viper.New(), path, flags, true)
}

func load(v *viper.Viper, path string, flags *pflag.FlagSet, external bool) (*Config, error) {
	setDefaults(v)

	if external {
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if flags != nil {
			for name, key := range flagKeys {
				if f := flags.Lookup(name); f != nil {
					if err := v.BindPFlag(key, f); err != nil {
						return nil, fmt.Errorf("bind flag %s: %w", name, err)
					}
				}
			}
		}

		if path != "" {
			v.SetConfigFile(path)
		} else {
			v.SetConfigName(fileName)
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
			if home, err := os.UserHomeDir(); err == nil {
				v.AddConfigPath(filepath.Join(home, ".config", fileName))
			}
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if path != "" || !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Economy.HP < 1 {
		errs = append(errs, fmt.Errorf("economy.hp must be at least 1, got %d", c.Economy.HP))
	}
	if c.Economy.Chips < 0 {
		errs = append(errs, fmt.Errorf("economy.chips must not be negative, got %d", c.Economy.Chips))
	}
	if c.Player.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.move_speed must be positive, got %v", c.Player.MoveSpeed))
	}
	if c.Wave.AutoAdvance <= 0 {
		errs = append(errs, fmt.Errorf("wave.auto_advance must be positive, got %v", c.Wave.AutoAdvance))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// World converts the gameplay keys to a world.Config. The logger is left unset.
func (c *Config) World() world.Config {
	w := world.DefaultConfig()
	w.StartX = c.Player.X
	w.StartY = c.Player.Y
	w.StartAngle = c.Player.Angle
	w.MoveSpeed = c.Player.MoveSpeed
	w.TurnSpeed = c.Player.TurnSpeed
	w.SensitivityX = c.Player.SensitivityX
	w.SensitivityY = c.Player.SensitivityY
	w.KeyboardTurn = c.Player.KeyboardTurn
	w.Chips = c.Economy.Chips
	w.HP = c.Economy.HP
	w.AutoAdvance = c.Wave.AutoAdvance
	w.OfferPerks = c.Wave.OfferPerks
	w.Seed = c.Seed
	return w
}
