package core

// Clamp returns a size with both dimensions forced to at least one cell.
func (s Size) Clamp() Size {
	if s.W <= 0 {
		s.W = 1
	}
	if s.H <= 0 {
		s.H = 1
	}
	return s
}

// Index returns the linear row-major index for coordinates (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Size) Wrap(x, y int) (int, int) {
	x = (x%s.W + s.W) % s.W
	y = (y%s.H + s.H) % s.H
	return x, y
}
