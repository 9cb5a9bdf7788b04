package app

import (
	"context"

	"framelife/internal/core"
	"framelife/internal/display"
)

// Run drives sim against d, sleeping one pacer delay between frames, until
// Frame reports the end, Present fails or ctx is cancelled. Cancellation is
// a normal stop.
func Run(ctx context.Context, sim *Sim, d display.Display, pacer *core.Pacer) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		more, err := sim.Frame(d)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if err := pacer.Wait(ctx); err != nil {
			return nil
		}
	}
}
