package app

import (
	"flag"
	"time"

	"framelife/internal/core"
	"framelife/internal/patterns"
	"framelife/internal/surface"

	"github.com/pkg/errors"
)

// Display names accepted by the -display flag.
const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
	DisplayHeadless = "headless"
)

// PatternRandom seeds a random soup instead of a registered pattern.
const PatternRandom = "random"

var (
	ErrUnknownDisplay = errors.New("unknown display")
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	Delay  time.Duration

	Pattern string
	X, Y    int
	Seed    int64
	Density float64

	Workers     int
	Display     string
	Generations int
	Export      string
	HUD         bool

	Background surface.Color
	Foreground surface.Color
}

// NewConfig returns a Config for an 80x60 glider run at 60Hz.
func NewConfig() *Config {
	return &Config{
		Width:      80,
		Height:     60,
		Scale:      10,
		Delay:      core.DefaultFrameDelay,
		Pattern:    patterns.Glider.Name,
		X:          1,
		Y:          1,
		Seed:       42,
		Density:    0.25,
		Workers:    1,
		Display:    DisplayWindow,
		Background: surface.Black,
		Foreground: surface.White,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per cell")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "delay between frames")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern: random or a named pattern")
	fs.IntVar(&c.X, "x", c.X, "pattern column offset")
	fs.IntVar(&c.Y, "y", c.Y, "pattern row offset")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for the random pattern")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands counted concurrently per generation")
	fs.StringVar(&c.Display, "display", c.Display, "window, terminal or headless")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs until quit)")
	fs.StringVar(&c.Export, "export", c.Export, "write the final frame to this BMP file")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show generation and population in the window")
	fs.Var((*colorValue)(&c.Background), "bg", "background color (#rrggbb)")
	fs.Var((*colorValue)(&c.Foreground), "fg", "cell color (#rrggbb)")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Scale <= 0:
		return errors.Errorf("[Validate] scale must be positive, got %d", c.Scale)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("[Validate] density must be within [0,1], got %g", c.Density)
	case c.Generations < 0:
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Generations)
	}
	switch c.Display {
	case DisplayWindow, DisplayTerminal, DisplayHeadless:
	default:
		return errors.Wrapf(ErrUnknownDisplay, "[Validate] %q", c.Display)
	}
	if c.Pattern != PatternRandom {
		if _, ok := patterns.Lookup(c.Pattern); !ok {
			return errors.Wrapf(ErrUnknownPattern, "[Validate] %q (known: %v)", c.Pattern, patterns.Names())
		}
	}
	return nil
}

type colorValue surface.Color

func (v *colorValue) String() string {
	if v == nil {
		return ""
	}
	return surface.Color(*v).String()
}

func (v *colorValue) Set(s string) error {
	c, err := surface.ParseColor(s)
	if err != nil {
		return err
	}
	*v = colorValue(c)
	return nil
}
