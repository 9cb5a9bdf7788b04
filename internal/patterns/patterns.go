// Package patterns holds seed shapes and places them onto a cell grid.
package patterns

import (
	"sort"

	"framelife/internal/core"
)

// Point is a live-cell offset from a pattern's origin.
type Point struct {
	X, Y int
}

// Pattern is a named set of live cells.
type Pattern struct {
	Name  string
	Cells []Point
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (w, h int) {
	for _, c := range p.Cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

// Setter is the write side of a cell grid.
type Setter interface {
	SetCell(x, y int, alive bool)
}

// Place marks every cell of p alive, offset by (x, y). Cells that fall
// outside the grid are left to the grid to ignore.
func Place(g Setter, p Pattern, x, y int) {
	for _, c := range p.Cells {
		g.SetCell(x+c.X, y+c.Y, true)
	}
}

// Random sets every cell inside size alive with probability density.
func Random(g Setter, size core.Size, rng *core.RNG, density float64) {
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			g.SetCell(x, y, rng.Chance(density))
		}
	}
}

// FromRows builds a pattern from text rows where 'X' or 'O' marks a live cell.
func FromRows(name string, rows ...string) Pattern {
	p := Pattern{Name: name}
	for y, row := range rows {
		for x, r := range row {
			if r == 'X' || r == 'O' {
				p.Cells = append(p.Cells, Point{X: x, Y: y})
			}
		}
	}
	return p
}

var registry = map[string]Pattern{}

// Register adds a pattern under the provided name.
func Register(name string, p Pattern) {
	if name == "" || len(p.Cells) == 0 {
		return
	}
	registry[name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
