package core

import (
	"context"
	"time"
)

// DefaultFrameDelay matches a 60Hz display refresh.
const DefaultFrameDelay = 16 * time.Millisecond

// Pacer spaces loop iterations by a fixed delay.
type Pacer struct {
	delay time.Duration
}

// NewPacer constructs a Pacer sleeping delay between frames. Non-positive
// delays fall back to DefaultFrameDelay.
func NewPacer(delay time.Duration) *Pacer {
	p := &Pacer{}
	p.SetDelay(delay)
	return p
}

// SetDelay changes the frame delay. It is safe to call from the main loop.
func (p *Pacer) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = DefaultFrameDelay
	}
	p.delay = delay
}

// Delay returns the configured frame delay.
func (p *Pacer) Delay() time.Duration { return p.delay }

// TPS converts the delay into a ticks-per-second rate, rounded to the
// nearest whole tick and never below one.
func (p *Pacer) TPS() int {
	tps := int((time.Second + p.delay/2) / p.delay)
	if tps < 1 {
		tps = 1
	}
	return tps
}

// Wait blocks for one frame delay or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
