package app

import (
	"framelife/internal/core"
	"framelife/internal/display"
	"framelife/internal/life"
	"framelife/internal/patterns"
	"framelife/internal/surface"

	"github.com/pkg/errors"
)

// Sim owns the surface and engine driven by the frame loop.
type Sim struct {
	surface *surface.Surface
	engine  *life.Engine
	limit   int
}

// NewSim builds a cleared surface in the configured colors and seeds it.
func NewSim(cfg Config) (*Sim, error) {
	s := surface.New(cfg.Width, cfg.Height)
	s.SetBackgroundColor(cfg.Background)
	s.SetDrawColor(cfg.Foreground)
	s.Clear()

	if cfg.Pattern == PatternRandom {
		patterns.Random(s, s.Size(), core.NewRNG(cfg.Seed), cfg.Density)
	} else {
		p, ok := patterns.Lookup(cfg.Pattern)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownPattern, "[NewSim] %q", cfg.Pattern)
		}
		patterns.Place(s, p, cfg.X, cfg.Y)
	}

	return &Sim{
		surface: s,
		engine:  life.NewEngine(life.WithWorkers(cfg.Workers)),
		limit:   cfg.Generations,
	}, nil
}

// Surface exposes the simulated surface.
func (s *Sim) Surface() *surface.Surface { return s.surface }

// Generation returns the number of completed generations.
func (s *Sim) Generation() int { return s.engine.Generation() }

// Population returns the number of alive cells.
func (s *Sim) Population() int { return s.surface.Population() }

// Done reports whether the generation limit has been reached.
func (s *Sim) Done() bool { return s.limit > 0 && s.engine.Generation() >= s.limit }

// Frame runs one loop iteration: stop if the display is closed, the quit
// key is held or the limit is reached; otherwise step and present. It
// returns false when the loop should end.
func (s *Sim) Frame(d display.Display) (bool, error) {
	if !d.IsOpen() || d.QuitPressed() || s.Done() {
		return false, nil
	}
	s.engine.Step(s.surface)
	if err := d.Present(s.surface.Pixels(), s.surface.Width(), s.surface.Height()); err != nil {
		return false, errors.Wrapf(err, "[Frame] generation %d", s.engine.Generation())
	}
	return true, nil
}

// Finish exports the final frame when path is set.
func (s *Sim) Finish(path string) error {
	if path == "" {
		return nil
	}
	return s.surface.Export(path)
}
