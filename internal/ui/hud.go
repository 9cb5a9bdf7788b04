//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding = 4
	hudHeight  = 17
)

// HUD renders a one-line status strip in the top-left corner.
type HUD struct {
	src   StatusSource
	panel *ebiten.Image
	line  string
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src StatusSource) *HUD {
	return &HUD{src: src}
}

// Update refreshes the cached status text.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.line = StatusLine(h.src)
}

// Draw renders the status strip onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.line == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, h.line)
	width := bounds.Dx() + 2*hudPadding
	if h.panel == nil || h.panel.Bounds().Dx() < width {
		h.panel = ebiten.NewImage(width, hudHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	text.Draw(h.panel, h.line, face, hudPadding, hudHeight-hudPadding, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
