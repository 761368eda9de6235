package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var ErrInvalid = errors.New("invalid config")

const (
	ThemeClassic = "classic"
	ThemeDark    = "dark"

	minCellSize = 8
)

type Config struct {
	Width    int
	Height   int
	Bombs    int
	CellSize int
	// Seed makes the sequence of bomb layouts reproducible; 0 is random.
	Seed     uint64
	Theme    string
	LogLevel string
}

func Default() Config {
	return Config{
		Width:    20,
		Height:   15,
		Bombs:    20,
		CellSize: 32,
		Theme:    ThemeClassic,
		LogLevel: "info",
	}
}

// Parse reads command-line arguments (without the program name) on top of
// the defaults and validates the result.
func Parse(name string, args []string) (Config, error) {
	c := Default()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.IntVarP(&c.Width, "width", "W", c.Width, "board width in cells")
	fs.IntVarP(&c.Height, "height", "H", c.Height, "board height in cells")
	fs.IntVarP(&c.Bombs, "bombs", "b", c.Bombs, "number of bombs")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed for bomb placement (0 = random)")
	fs.StringVar(&c.Theme, "theme", c.Theme, "color theme: classic or dark")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrInvalid, fs.Args())
	}
	c.Theme = strings.ToLower(c.Theme)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d must have positive dimensions", ErrInvalid, c.Width, c.Height)
	}
	if c.Bombs < 0 || c.Bombs > c.Width*c.Height {
		return fmt.Errorf("%w: %d bombs do not fit a %dx%d board", ErrInvalid, c.Bombs, c.Width, c.Height)
	}
	if c.CellSize < minCellSize {
		return fmt.Errorf("%w: cell size %d is below %d", ErrInvalid, c.CellSize, minCellSize)
	}
	switch c.Theme {
	case ThemeClassic, ThemeDark:
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, c.Theme)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return lvl, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"width":     c.Width,
		"height":    c.Height,
		"bombs":     c.Bombs,
		"cell_size": c.CellSize,
		"seed":      c.Seed,
		"theme":     c.Theme,
		"log_level": c.LogLevel,
	}
}
