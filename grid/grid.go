package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/internal/logging"
)

// FillRule computes the initial value of a cell. It is evaluated exactly once
// per cell, in row-major order, during New.
type FillRule[T any] func(c coord.Coord) T

// Fill returns a FillRule that sets every cell to v.
func Fill[T any](v T) FillRule[T] {
	return func(coord.Coord) T { return v }
}

// Generate returns fn as a FillRule; it exists so call sites read uniformly
// next to Fill.
func Generate[T any](fn func(c coord.Coord) T) FillRule[T] {
	return FillRule[T](fn)
}

// Grid is a dense width×height store of T. Cells live in a single row-major
// slice: cell (r,c) is at index r*width + c.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New allocates a width×height grid initialised by fill. A nil fill leaves
// every cell at T's zero value.
// Returns ErrInvalidDimension if width <= 0, height <= 0, or width×height
// does not fit in an int.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, fill FillRule[T]) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	if height > math.MaxInt/width {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimension, width, height)
	}
	g := &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
	if fill != nil {
		for i := range g.cells {
			g.cells[i] = fill(g.CoordAt(i))
		}
	}
	logging.Debug("grid: allocated", "width", width, "height", height, "cells", len(g.cells))

	return g, nil
}

// MustNew is like New but panics on invalid dimensions. Intended for tests
// and package-level fixtures with constant sizes.
func MustNew[T any](width, height int, fill FillRule[T]) *Grid[T] {
	g, err := New(width, height, fill)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the number of cells, Width×Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Max returns the bottom-right in-bounds coordinate (Height-1, Width-1).
func (g *Grid[T]) Max() coord.Coord {
	return coord.New(g.height-1, g.width-1)
}

// Contains reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) Contains(c coord.Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Index maps c to its row-major slice index. ok is false when c is outside.
func (g *Grid[T]) Index(c coord.Coord) (i int, ok bool) {
	if !g.Contains(c) {
		return 0, false
	}
	return c.Row*g.width + c.Col, true
}

// CoordAt converts a row-major index back to a coordinate. The result is only
// meaningful for 0 <= i < Len().
func (g *Grid[T]) CoordAt(i int) coord.Coord {
	return coord.New(i/g.width, i%g.width)
}

// Get returns the value at c. ok is false when c is out of bounds.
func (g *Grid[T]) Get(c coord.Coord) (v T, ok bool) {
	i, ok := g.Index(c)
	if !ok {
		return v, false
	}
	return g.cells[i], true
}

// Set writes v at c, or returns ErrOutOfBounds (wrapped with c).
func (g *Grid[T]) Set(c coord.Coord, v T) error {
	i, ok := g.Index(c)
	if !ok {
		return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, c, g.width, g.height)
	}
	g.cells[i] = v
	return nil
}

// ref returns a pointer to the cell at c, or nil when c is outside.
func (g *Grid[T]) ref(c coord.Coord) *T {
	i, ok := g.Index(c)
	if !ok {
		return nil
	}
	return &g.cells[i]
}
