//go:build ebiten

package app

import (
	"context"

	"framelife/internal/core"
	"framelife/internal/display"
	"framelife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// Game adapts a Sim and its window to the ebiten.Game interface.
type Game struct {
	ctx context.Context
	sim *Sim
	win *display.Window
	hud *ui.HUD
}

// NewGame constructs a Game that stops once ctx is done. hud may be nil.
func NewGame(ctx context.Context, sim *Sim, win *display.Window, hud *ui.HUD) *Game {
	return &Game{ctx: ctx, sim: sim, win: win, hud: hud}
}

// Update advances the simulation by one frame.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	more, err := g.sim.Frame(g.win)
	if err != nil {
		return err
	}
	if !more {
		return ebiten.Termination
	}
	g.hud.Update()
	return nil
}

// Draw renders the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.win.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.win.Layout()
}

// RunWindow opens the ebiten window and blocks until it closes or ctx is
// cancelled.
func RunWindow(ctx context.Context, cfg Config, sim *Sim) error {
	win, err := display.NewWindow("framelife — Conway's Game of Life", cfg.Width, cfg.Height, cfg.Scale)
	if err != nil {
		return err
	}
	var hud *ui.HUD
	if cfg.HUD {
		hud = ui.NewHUD(sim)
	}
	ebiten.SetTPS(core.NewPacer(cfg.Delay).TPS())

	if err := ebiten.RunGame(NewGame(ctx, sim, win, hud)); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[RunWindow] game loop failed")
	}
	return nil
}
