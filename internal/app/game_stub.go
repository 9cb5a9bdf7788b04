//go:build !ebiten

package app

import (
	"context"

	"framelife/internal/display"
)

// RunWindow reports that the window display needs the ebiten build tag.
func RunWindow(context.Context, Config, *Sim) error {
	return display.ErrNoWindow
}
