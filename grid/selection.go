package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvlgrid/coord"
)

// Select yields (c, value) for every in-bounds coordinate of seq, in seq order.
// Out-of-bounds coordinates are skipped. Values are read lazily, so a write made
// by the consumer between pulls is observed by later pulls.
func (g *Grid[T]) Select(seq coord.Seq) iter.Seq2[coord.Coord, T] {
	return func(yield func(coord.Coord, T) bool) {
		for c := range seq {
			i, ok := g.Index(c)
			if !ok {
				continue
			}
			if !yield(c, g.cells[i]) {
				return
			}
		}
	}
}

// SelectValues is Select without the coordinates.
func (g *Grid[T]) SelectValues(seq coord.Seq) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.Select(seq) {
			if !yield(v) {
				return
			}
		}
	}
}

// SelectMut replaces every in-bounds cell of seq with fn(c, current), one cell
// at a time in seq order, and returns how many cells were written. A coordinate
// that appears twice is mutated twice and sees its first result.
func (g *Grid[T]) SelectMut(seq coord.Seq, fn func(c coord.Coord, v T) T) int {
	n := 0
	for c := range seq {
		i, ok := g.Index(c)
		if !ok {
			continue
		}
		g.cells[i] = fn(c, g.cells[i])
		n++
	}
	return n
}

// SelectRef hands fn a pointer to every in-bounds cell of seq. Returning false
// from fn ends the pass; cells already visited keep their changes. The pointer
// must not be retained after fn returns.
// It returns the number of cells handed to fn.
func (g *Grid[T]) SelectRef(seq coord.Seq, fn func(c coord.Coord, v *T) bool) int {
	n := 0
	for c := range seq {
		p := g.ref(c)
		if p == nil {
			continue
		}
		n++
		if !fn(c, p) {
			break
		}
	}
	return n
}

// FillSeq sets every in-bounds cell of seq to v and returns how many were set.
func (g *Grid[T]) FillSeq(seq coord.Seq, v T) int {
	return g.SelectMut(seq, func(coord.Coord, T) T { return v })
}

// Probe yields every coordinate of seq paired with nil when it is in bounds, or
// with a wrapped ErrOutOfBounds when it is not. Use it when the caller needs to
// account for coordinates that Select would drop.
func (g *Grid[T]) Probe(seq coord.Seq) iter.Seq2[coord.Coord, error] {
	return func(yield func(coord.Coord, error) bool) {
		for c := range seq {
			var err error
			if !g.Contains(c) {
				err = fmt.Errorf("%w: %v", ErrOutOfBounds, c)
			}
			if !yield(c, err) {
				return
			}
		}
	}
}

// Select is the free-function form of (*Grid[T]).Select.
func Select[T any](g *Grid[T], seq coord.Seq) iter.Seq2[coord.Coord, T] {
	return g.Select(seq)
}

// SelectMut is the free-function form of (*Grid[T]).SelectMut.
func SelectMut[T any](g *Grid[T], seq coord.Seq, fn func(c coord.Coord, v T) T) int {
	return g.SelectMut(seq, fn)
}
