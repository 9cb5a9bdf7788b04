package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"framelife/internal/core"
	"framelife/internal/display"
	"framelife/internal/surface"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("framelife", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-width", "32", "-height", "24", "-pattern", "pulsar",
		"-bg", "#333355", "-fg", "0xffdddd", "-delay", "40ms",
		"-display", "headless", "-generations", "9", "-workers", "3",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 32 || cfg.Height != 24 || cfg.Pattern != "pulsar" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Background != 0x333355 || cfg.Foreground != 0xFFDDDD {
		t.Fatalf("colors = %v/%v", cfg.Background, cfg.Foreground)
	}
	if cfg.Delay != 40*time.Millisecond || cfg.Generations != 9 || cfg.Workers != 3 {
		t.Fatalf("unexpected pacing/limits %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestBindRejectsBadColor(t *testing.T) {
	fs := flag.NewFlagSet("framelife", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	NewConfig().Bind(fs)
	if err := fs.Parse([]string{"-bg", "purple"}); err == nil {
		t.Fatal("expected parse error for a named color")
	}
}

func TestValidate(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	cfg := NewConfig()
	cfg.Display = "vga"
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownDisplay) {
		t.Fatalf("expected ErrUnknownDisplay, got %v", err)
	}

	cfg = NewConfig()
	cfg.Pattern = "gosper"
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}

	for _, mutate := range []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = -1 },
		func(c *Config) { c.Scale = 0 },
		func(c *Config) { c.Density = 1.5 },
		func(c *Config) { c.Generations = -2 },
	} {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected validation error for %+v", cfg)
		}
	}

	cfg = NewConfig()
	cfg.Pattern = PatternRandom
	if err := cfg.Validate(); err != nil {
		t.Fatalf("random pattern rejected: %v", err)
	}
}

func headlessConfig() Config {
	cfg := NewConfig()
	cfg.Display = DisplayHeadless
	cfg.Width, cfg.Height = 20, 20
	cfg.Delay = time.Millisecond
	return *cfg
}

func TestNewSimSeedsGlider(t *testing.T) {
	sim, err := NewSim(headlessConfig())
	if err != nil {
		t.Fatal(err)
	}
	s := sim.Surface()
	for _, c := range [][2]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
		if !s.IsAlive(c[0], c[1]) {
			t.Fatalf("expected (%d,%d) alive", c[0], c[1])
		}
	}
	if sim.Population() != 5 || sim.Generation() != 0 {
		t.Fatalf("population %d generation %d", sim.Population(), sim.Generation())
	}
	if c, _ := s.PixelAt(0, 0); c != surface.Black {
		t.Fatalf("background pixel = %v", c)
	}
}

func TestNewSimRandomIsDeterministic(t *testing.T) {
	cfg := headlessConfig()
	cfg.Pattern = PatternRandom
	a, err := NewSim(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := NewSim(cfg)
	if a.Population() == 0 || a.Population() != b.Population() {
		t.Fatalf("populations %d/%d", a.Population(), b.Population())
	}
}

func TestNewSimUnknownPattern(t *testing.T) {
	cfg := headlessConfig()
	cfg.Pattern = "nope"
	if _, err := NewSim(cfg); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestRunStopsAtGenerationLimit(t *testing.T) {
	cfg := headlessConfig()
	cfg.Generations = 8
	sim, _ := NewSim(cfg)
	d := display.NewHeadless(0)

	if err := Run(context.Background(), sim, d, core.NewPacer(cfg.Delay)); err != nil {
		t.Fatal(err)
	}
	if sim.Generation() != 8 || d.Frames() != 8 {
		t.Fatalf("generation %d frames %d, expected 8", sim.Generation(), d.Frames())
	}
	if sim.Population() != 5 {
		t.Fatalf("glider population = %d", sim.Population())
	}
	// Two full glider periods later the shape sits two cells further along.
	for _, c := range [][2]int{{4, 3}, {5, 4}, {3, 5}, {4, 5}, {5, 5}} {
		if !sim.Surface().IsAlive(c[0], c[1]) {
			t.Fatalf("expected (%d,%d) alive", c[0], c[1])
		}
	}
	last, w, h := d.Last()
	if w != 20 || h != 20 || len(last) != 400 {
		t.Fatalf("last frame %dx%d len %d", w, h, len(last))
	}
}

func TestRunStopsWhenDisplayCloses(t *testing.T) {
	sim, _ := NewSim(headlessConfig())
	d := display.NewHeadless(3)
	if err := Run(context.Background(), sim, d, core.NewPacer(time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if sim.Generation() != 3 {
		t.Fatalf("generation = %d, expected 3", sim.Generation())
	}
}

type quitAfter struct {
	*display.Headless
	n int
}

func (q *quitAfter) QuitPressed() bool { return q.Frames() >= q.n }

func TestRunStopsOnQuitKey(t *testing.T) {
	sim, _ := NewSim(headlessConfig())
	d := &quitAfter{Headless: display.NewHeadless(0), n: 2}
	if err := Run(context.Background(), sim, d, core.NewPacer(time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if sim.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", sim.Generation())
	}
}

type failingDisplay struct{ display.Headless }

var errBroken = errors.New("broken pipe")

func (f *failingDisplay) Present([]uint32, int, int) error { return errBroken }

func TestRunPropagatesPresentErrors(t *testing.T) {
	sim, _ := NewSim(headlessConfig())
	err := Run(context.Background(), sim, &failingDisplay{}, core.NewPacer(time.Millisecond))
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected present error, got %v", err)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	sim, _ := NewSim(headlessConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := display.NewHeadless(0)
	if err := Run(ctx, sim, d, core.NewPacer(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if d.Frames() != 0 {
		t.Fatalf("frames = %d after cancelled start", d.Frames())
	}
}

func TestFinishExports(t *testing.T) {
	sim, _ := NewSim(headlessConfig())
	if err := sim.Finish(""); err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.bmp")
	if err := sim.Finish(path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("export missing: %v", err)
	}
}
