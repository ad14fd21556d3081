package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for a game run. Values are layered: defaults,
// then an optional YAML file, then MINEFIELD_* environment variables, then
// command-line flags.
type Config struct {
	Width      int    `yaml:"width" env:"MINEFIELD_WIDTH"`
	Height     int    `yaml:"height" env:"MINEFIELD_HEIGHT"`
	Mines      int    `yaml:"mines" env:"MINEFIELD_MINES"`
	CellSize   int    `yaml:"cell_size" env:"MINEFIELD_CELL_SIZE"`
	HUDWidth   int    `yaml:"hud_width" env:"MINEFIELD_HUD_WIDTH"`
	TPS        int    `yaml:"tps" env:"MINEFIELD_TPS"`
	RefreshTPS int    `yaml:"refresh_tps" env:"MINEFIELD_REFRESH_TPS"`
	Seed       int64  `yaml:"seed" env:"MINEFIELD_SEED"`
	LogLevel   string `yaml:"log_level" env:"MINEFIELD_LOG_LEVEL"`
	ExitOnWin  bool   `yaml:"exit_on_win" env:"MINEFIELD_EXIT_ON_WIN"`
}

// NewConfig returns a Config populated with the classic 30x16 field.
func NewConfig() *Config {
	return &Config{
		Width:      30,
		Height:     16,
		Mines:      100,
		CellSize:   40,
		HUDWidth:   200,
		TPS:        60,
		RefreshTPS: 20,
		LogLevel:   "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "field width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "field height in cells")
	fs.IntVar(&c.Mines, "mines", c.Mines, "number of mines")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.RefreshTPS, "refresh", c.RefreshTPS, "board repaints per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for mine placement (0 picks one at random)")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&c.ExitOnWin, "exit-on-win", c.ExitOnWin, "quit once every mine is flagged")
}

// LoadFile overlays values from a YAML file. Keys missing from the file keep
// their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays MINEFIELD_* variables from environment, or from the
// process environment when environment is nil.
func (c *Config) ApplyEnv(environment map[string]string) error {
	if err := env.ParseWithOptions(c, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings that cannot produce a playable field.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("field size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Mines < 0 || c.Mines >= c.Width*c.Height {
		return fmt.Errorf("%d mines do not fit a %dx%d field", c.Mines, c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size %d must be positive", c.CellSize)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("hud width %d must not be negative", c.HUDWidth)
	}
	if c.TPS <= 0 || c.RefreshTPS <= 0 {
		return fmt.Errorf("tick rates must be positive (tps=%d refresh=%d)", c.TPS, c.RefreshTPS)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Load builds a Config from args and environment. A -config flag names the
// YAML file; explicit flags win over the file and the environment.
func Load(name string, args []string, environment map[string]string) (*Config, error) {
	pre := flag.NewFlagSet(name, flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	NewConfig().Bind(pre)
	path := pre.String("config", "", "")
	if err := pre.Parse(args); err != nil && !errors.Is(err, flag.ErrHelp) {
		return nil, err
	}

	cfg := NewConfig()
	if *path != "" {
		if err := cfg.LoadFile(*path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(environment); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	fs.String("config", *path, "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
