package pattern

import (
	"slices"

	"github.com/katalvlaran/lvlgrid/coord"
)

// Region is an unordered set of coordinates, typically built from a flood
// traversal or a Cluster. Iteration methods yield in row-major order so
// results are deterministic.
type Region struct {
	set map[coord.Coord]struct{}
}

// NewRegion collects seq into a set. Duplicates collapse.
func NewRegion(seq coord.Seq) *Region {
	r := &Region{set: make(map[coord.Coord]struct{})}
	if seq != nil {
		for c := range seq {
			r.set[c] = struct{}{}
		}
	}
	return r
}

// Len returns the number of distinct coordinates.
func (r *Region) Len() int { return len(r.set) }

// Contains reports membership.
func (r *Region) Contains(c coord.Coord) bool {
	_, ok := r.set[c]
	return ok
}

// Add inserts c and reports whether it was new.
func (r *Region) Add(c coord.Coord) bool {
	if _, ok := r.set[c]; ok {
		return false
	}
	r.set[c] = struct{}{}
	return true
}

// Remove deletes c and reports whether it was present.
func (r *Region) Remove(c coord.Coord) bool {
	if _, ok := r.set[c]; !ok {
		return false
	}
	delete(r.set, c)
	return true
}

// Sorted returns the members in row-major order.
func (r *Region) Sorted() []coord.Coord {
	out := make([]coord.Coord, 0, len(r.set))
	for c := range r.set {
		out = append(out, c)
	}
	slices.SortFunc(out, coord.Compare)
	return out
}

// All yields the members in row-major order.
func (r *Region) All() coord.Seq {
	return slices.Values(r.Sorted())
}

// Bounds returns the smallest Rect containing every member; ok is false for an
// empty region.
func (r *Region) Bounds() (b Rect, ok bool) {
	first := true
	var lo, hi coord.Coord
	for c := range r.set {
		if first {
			lo, hi, first = c, c, false
			continue
		}
		lo = coord.New(min(lo.Row, c.Row), min(lo.Col, c.Col))
		hi = coord.New(max(hi.Row, c.Row), max(hi.Col, c.Col))
	}
	if first {
		return Rect{}, false
	}
	return RectCorners(lo, hi), true
}

// outside reports whether c has at least one Moore neighbor that is not a member.
func (r *Region) outside(c coord.Coord) bool {
	for n := range Neighbors(c, coord.Conn8) {
		if !r.Contains(n) {
			return true
		}
	}
	return false
}

// Interior yields members whose eight neighbors are all members.
func (r *Region) Interior() coord.Seq {
	return Filter(r.All(), func(c coord.Coord) bool { return !r.outside(c) })
}

// InternalBorder yields members with at least one non-member neighbor: the
// layer lining the inside of the region.
func (r *Region) InternalBorder() coord.Seq {
	return Filter(r.All(), r.outside)
}

// ExternalBorder yields non-members adjacent to at least one member: the layer
// wrapping the region from outside. Each coordinate is produced once.
func (r *Region) ExternalBorder() coord.Seq {
	return func(yield func(coord.Coord) bool) {
		ext := NewRegion(nil)
		for _, c := range r.Sorted() {
			for n := range Neighbors(c, coord.Conn8) {
				if !r.Contains(n) {
					ext.Add(n)
				}
			}
		}
		for c := range ext.All() {
			if !yield(c) {
				return
			}
		}
	}
}
