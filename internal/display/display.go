// Package display presents packed pixel buffers and reports the quit key.
package display

import "github.com/pkg/errors"

// Display is the minimal capability the driving loop needs from a screen.
type Display interface {
	IsOpen() bool
	QuitPressed() bool
	Present(pixels []uint32, width, height int) error
}

// ErrFrameSize is returned when a buffer does not match its dimensions.
var ErrFrameSize = errors.New("pixel buffer does not match frame size")

func checkFrame(pixels []uint32, width, height int) error {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return errors.Wrapf(ErrFrameSize, "[Present] %d pixels for %dx%d", len(pixels), width, height)
	}
	return nil
}

// Headless keeps the last presented frame in memory. With a non-zero limit
// it reports closed once that many frames have been presented.
type Headless struct {
	limit  int
	frames int
	quit   bool

	width, height int
	last          []uint32
}

// NewHeadless returns a headless display closing after limit frames, or
// never when limit is zero.
func NewHeadless(limit int) *Headless {
	if limit < 0 {
		limit = 0
	}
	return &Headless{limit: limit}
}

// IsOpen reports false once the frame limit has been presented.
func (h *Headless) IsOpen() bool { return h.limit == 0 || h.frames < h.limit }

// QuitPressed reports whether PressQuit has been called.
func (h *Headless) QuitPressed() bool { return h.quit }

// PressQuit latches the quit key.
func (h *Headless) PressQuit() { h.quit = true }

// Present copies the frame.
func (h *Headless) Present(pixels []uint32, width, height int) error {
	if err := checkFrame(pixels, width, height); err != nil {
		return err
	}
	h.last = append(h.last[:0], pixels...)
	h.width, h.height = width, height
	h.frames++
	return nil
}

// Frames returns how many frames were presented.
func (h *Headless) Frames() int { return h.frames }

// Last returns the most recent frame and its dimensions.
func (h *Headless) Last() ([]uint32, int, int) { return h.last, h.width, h.height }
