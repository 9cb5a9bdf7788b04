// Package surface maps a boolean cell grid onto a packed RGB pixel buffer.
//
// Grid row 0 is the bottom of the displayed image: the alive flag for (x, y)
// lives at y*width+x while its pixel lives at (height-1-y)*width+x. Only
// pixelIndex knows about the flip.
package surface

import "framelife/internal/core"

// Surface owns a fixed-size pixel buffer and a parallel grid of alive flags.
type Surface struct {
	size   core.Size
	pixels []uint32
	cells  []bool

	background Color
	draw       Color
	line       Color
}

// New allocates a surface. Non-positive dimensions are clamped to one.
func New(width, height int) *Surface {
	size := core.Size{W: width, H: height}.Clamp()
	return &Surface{
		size:       size,
		pixels:     make([]uint32, size.Area()),
		cells:      make([]bool, size.Area()),
		background: Black,
		draw:       White,
		line:       White,
	}
}

// Size returns the grid dimensions.
func (s *Surface) Size() core.Size { return s.size }

// Width returns the number of columns.
func (s *Surface) Width() int { return s.size.W }

// Height returns the number of rows.
func (s *Surface) Height() int { return s.size.H }

// Pixels exposes the backing pixel buffer, top display row first. Callers
// must treat it as read-only.
func (s *Surface) Pixels() []uint32 { return s.pixels }

func (s *Surface) pixelIndex(x, y int) int {
	return (s.size.H-1-y)*s.size.W + x
}

// SetCell records the alive state of (x, y) and paints its pixel with the
// draw or background color. Out-of-range coordinates are ignored.
func (s *Surface) SetCell(x, y int, alive bool) {
	if !s.size.Contains(x, y) {
		return
	}
	s.cells[s.size.Index(x, y)] = alive
	c := s.background
	if alive {
		c = s.draw
	}
	s.pixels[s.pixelIndex(x, y)] = uint32(c)
}

// IsAlive reports the alive state of (x, y), false when out of range.
func (s *Surface) IsAlive(x, y int) bool {
	if !s.size.Contains(x, y) {
		return false
	}
	return s.cells[s.size.Index(x, y)]
}

// Point writes a raw pixel without touching the alive state.
func (s *Surface) Point(x, y int, c Color) {
	if !s.size.Contains(x, y) {
		return
	}
	s.pixels[s.pixelIndex(x, y)] = uint32(c)
}

// PixelAt returns the color of the pixel addressed by grid coordinates.
func (s *Surface) PixelAt(x, y int) (Color, bool) {
	if !s.size.Contains(x, y) {
		return 0, false
	}
	return Color(s.pixels[s.pixelIndex(x, y)]), true
}

// Clear paints every pixel with the background color and kills every cell.
func (s *Surface) Clear() {
	bg := uint32(s.background)
	for i := range s.pixels {
		s.pixels[i] = bg
	}
	for i := range s.cells {
		s.cells[i] = false
	}
}

// Population counts the alive cells.
func (s *Surface) Population() int {
	n := 0
	for _, alive := range s.cells {
		if alive {
			n++
		}
	}
	return n
}

// SetBackgroundColor sets the color used for dead cells and Clear.
func (s *Surface) SetBackgroundColor(c Color) { s.background = c }

// SetDrawColor sets the color used for alive cells.
func (s *Surface) SetDrawColor(c Color) { s.draw = c }

// SetLineColor sets the color reserved for line annotations.
func (s *Surface) SetLineColor(c Color) { s.line = c }

// BackgroundColor returns the color used for dead cells.
func (s *Surface) BackgroundColor() Color { return s.background }

// DrawColor returns the color used for alive cells.
func (s *Surface) DrawColor() Color { return s.draw }

// LineColor returns the color reserved for line annotations.
func (s *Surface) LineColor() Color { return s.line }
