//go:build ebiten

package display

import (
	"framelife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window presents frames in an ebiten window. ebiten drives the window from
// its own game loop, so Present only uploads the frame and Draw blits it.
type Window struct {
	painter *render.FramePainter
	w, h    int
	scale   int
}

// NewWindow configures the ebiten window for a w*h buffer magnified by scale.
func NewWindow(title string, w, h, scale int) (*Window, error) {
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowClosingHandled(true)
	return &Window{painter: render.NewFramePainter(w, h), w: w, h: h, scale: scale}, nil
}

// IsOpen reports false once the window close button has been pressed.
func (win *Window) IsOpen() bool { return !ebiten.IsWindowBeingClosed() }

// QuitPressed reports whether Escape or Q is held.
func (win *Window) QuitPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ)
}

// Present uploads the frame for the next Draw.
func (win *Window) Present(pixels []uint32, width, height int) error {
	if err := checkFrame(pixels, width, height); err != nil {
		return err
	}
	if width != win.w || height != win.h {
		return ErrFrameSize
	}
	win.painter.Upload(pixels)
	return nil
}

// Draw blits the last presented frame onto screen.
func (win *Window) Draw(screen *ebiten.Image) {
	win.painter.Blit(screen, win.scale)
}

// Layout returns the logical screen size.
func (win *Window) Layout() (int, int) { return win.w * win.scale, win.h * win.scale }
