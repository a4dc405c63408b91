package pattern

import (
	"slices"

	"github.com/katalvlaran/lvlgrid/coord"
)

// Slice yields cs in order.
func Slice(cs ...coord.Coord) coord.Seq {
	return slices.Values(cs)
}

// Chain yields every sequence in turn.
func Chain(seqs ...coord.Seq) coord.Seq {
	return func(yield func(coord.Coord) bool) {
		for _, s := range seqs {
			for c := range s {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Filter yields the coordinates of seq for which keep returns true.
func Filter(seq coord.Seq, keep func(coord.Coord) bool) coord.Seq {
	return func(yield func(coord.Coord) bool) {
		for c := range seq {
			if keep(c) && !yield(c) {
				return
			}
		}
	}
}

// Translate shifts every coordinate of seq by d.
func Translate(seq coord.Seq, d coord.Coord) coord.Seq {
	return func(yield func(coord.Coord) bool) {
		for c := range seq {
			if !yield(c.Add(d)) {
				return
			}
		}
	}
}

// Clip keeps only the coordinates inside bounds.
func Clip(seq coord.Seq, bounds Rect) coord.Seq {
	return Filter(seq, bounds.Contains)
}

// Take yields at most n coordinates of seq.
func Take(seq coord.Seq, n int) coord.Seq {
	return func(yield func(coord.Coord) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for c := range seq {
			if !yield(c) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// Dedup drops coordinates already produced, keeping first-seen order. The seen
// set lives for one iteration.
func Dedup(seq coord.Seq) coord.Seq {
	return func(yield func(coord.Coord) bool) {
		seen := make(map[coord.Coord]struct{})
		for c := range seq {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			if !yield(c) {
				return
			}
		}
	}
}

// Collect materializes seq.
func Collect(seq coord.Seq) []coord.Coord {
	return slices.Collect(seq)
}

// Count ranges over seq and returns the number of coordinates produced.
func Count(seq coord.Seq) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
