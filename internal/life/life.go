// Package life computes Conway's Game of Life generations on a torus.
package life

import (
	"framelife/internal/core"

	"golang.org/x/sync/errgroup"
)

// Grid is the cell state the engine reads and commits to.
type Grid interface {
	Size() core.Size
	IsAlive(x, y int) bool
	SetCell(x, y int, alive bool)
}

// Engine advances a Grid by whole generations. The next generation is
// computed entirely from the current one into a scratch buffer before
// anything is written back.
type Engine struct {
	workers    int
	generation int
	next       []bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers splits neighbour counting into n row bands counted
// concurrently. Values below one mean sequential.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// NewEngine returns an engine, sequential unless configured otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generation returns the number of completed steps.
func (e *Engine) Generation() int { return e.generation }

// Neighbors counts the live Moore neighbours of (x, y), wrapping both axes.
func Neighbors(g Grid, x, y int) int {
	size := g.Size()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := size.Wrap(x+dx, y+dy)
			if g.IsAlive(nx, ny) {
				n++
			}
		}
	}
	return n
}

// Rule applies B3/S23 to a cell with the given live neighbour count.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step advances g by one generation.
func (e *Engine) Step(g Grid) {
	size := g.Size()
	e.prepare(size.Area())

	if e.workers <= 1 || size.H < 2 {
		e.sweep(g, size, 0, size.H)
	} else {
		e.sweepBands(g, size)
	}

	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			g.SetCell(x, y, e.next[size.Index(x, y)])
		}
	}
	e.generation++
}

func (e *Engine) prepare(n int) {
	if cap(e.next) < n {
		e.next = make([]bool, n)
		return
	}
	e.next = e.next[:n]
	for i := range e.next {
		e.next[i] = false
	}
}

func (e *Engine) sweep(g Grid, size core.Size, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < size.W; x++ {
			e.next[size.Index(x, y)] = Rule(g.IsAlive(x, y), Neighbors(g, x, y))
		}
	}
}

// sweepBands counts disjoint row ranges concurrently. Bands only read g and
// write their own slice of e.next; the commit in Step stays sequential.
func (e *Engine) sweepBands(g Grid, size core.Size) {
	bands := min(e.workers, size.H)
	rowsPerBand := (size.H + bands - 1) / bands

	var eg errgroup.Group
	for i := 0; i < bands; i++ {
		y0 := i * rowsPerBand
		y1 := min(y0+rowsPerBand, size.H)
		if y0 >= size.H {
			break
		}
		eg.Go(func() error {
			e.sweep(g, size, y0, y1)
			return nil
		})
	}
	// Bands never return an error; Wait only joins them.
	_ = eg.Wait()
}
