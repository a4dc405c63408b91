package grid

import (
	"iter"
	"strings"

	"github.com/katalvlaran/lvlgrid/coord"
)

// Replace stores v at c and returns the previous value.
// ok is false (and nothing is written) when c is out of bounds.
func (g *Grid[T]) Replace(c coord.Coord, v T) (old T, ok bool) {
	p := g.ref(c)
	if p == nil {
		return old, false
	}
	old, *p = *p, v
	return old, true
}

// Take returns the value at c and resets the cell to T's zero value.
func (g *Grid[T]) Take(c coord.Coord) (v T, ok bool) {
	var zero T
	return g.Replace(c, zero)
}

// Swap exchanges the contents of a and b. Nothing changes unless both are in bounds.
func (g *Grid[T]) Swap(a, b coord.Coord) bool {
	pa, pb := g.ref(a), g.ref(b)
	if pa == nil || pb == nil {
		return false
	}
	*pa, *pb = *pb, *pa
	return true
}

// Copy copies the value at src into dst. Nothing changes unless both are in bounds.
func (g *Grid[T]) Copy(src, dst coord.Coord) bool {
	ps, pd := g.ref(src), g.ref(dst)
	if ps == nil || pd == nil {
		return false
	}
	*pd = *ps
	return true
}

// Move moves the value at src into dst, leaving the zero value at src, and
// returns the previous contents of dst. Both coordinates are checked before
// anything is mutated. Moving a cell onto itself is a no-op returning its value.
func (g *Grid[T]) Move(src, dst coord.Coord) (old T, ok bool) {
	ps, pd := g.ref(src), g.ref(dst)
	if ps == nil || pd == nil {
		return old, false
	}
	if ps == pd {
		return *pd, true
	}
	var zero T
	old, *pd, *ps = *pd, *ps, zero
	return old, true
}

// Clone returns a deep copy of the cell slice. Values themselves are copied
// by assignment, so reference-typed T shares its referents.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// Coords yields every in-bounds coordinate in row-major order.
func (g *Grid[T]) Coords() coord.Seq {
	return func(yield func(coord.Coord) bool) {
		for i := range g.cells {
			if !yield(g.CoordAt(i)) {
				return
			}
		}
	}
}

// All yields every (coordinate, value) pair in row-major order.
func (g *Grid[T]) All() iter.Seq2[coord.Coord, T] {
	return func(yield func(coord.Coord, T) bool) {
		for i, v := range g.cells {
			if !yield(g.CoordAt(i), v) {
				return
			}
		}
	}
}

// Format renders the grid as text: one line per row, cells separated by a
// single space, each cell drawn by glyph.
func (g *Grid[T]) Format(glyph func(T) rune) string {
	var b strings.Builder
	b.Grow(len(g.cells) * 2)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(glyph(g.cells[r*g.width+c]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
