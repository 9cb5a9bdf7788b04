//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter keeps a single ebiten image in sync with a packed pixel buffer.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFramePainter allocates a painter for a w*h pixel buffer.
func NewFramePainter(w, h int) *FramePainter {
	fp := &FramePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Upload copies pixels into the painter image. Buffers of the wrong size are
// ignored.
func (fp *FramePainter) Upload(pixels []uint32) {
	if len(pixels) != fp.w*fp.h {
		return
	}
	FillPackedRGBA(fp.buf, pixels)
	fp.img.WritePixels(fp.buf)
}

// Blit draws the last uploaded frame scaled onto dst.
func (fp *FramePainter) Blit(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}
