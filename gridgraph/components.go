package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/flood"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/internal/logging"
)

// Components finds all contiguous regions ("islands") of land cells.
// Components are seeded in row-major order; the cells of each are listed in
// flood order starting from the seed.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *Graph[T]) Components() [][]coord.Coord {
	seen := make([]bool, gg.g.Len())
	var comps [][]coord.Coord
	for c, v := range gg.g.All() {
		i, _ := gg.g.Index(c)
		if seen[i] || !gg.land(c, v) {
			continue
		}
		comp := flood.Collect(gg.g, c, gg.land, flood.WithConnectivity(gg.conn))
		for _, m := range comp {
			j, _ := gg.g.Index(m)
			seen[j] = true
		}
		comps = append(comps, comp)
	}
	logging.Debug("gridgraph: components", "count", len(comps), "conn", gg.conn)

	return comps
}

// Label paints every cell with the index of its component (the same indices
// Components uses) and water with -1. It returns the label grid and the
// number of components.
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *Graph[T]) Label() (*grid.Grid[int], int) {
	labels := grid.MustNew(gg.g.Width(), gg.g.Height(), grid.Fill(-1))
	n := 0
	for c, v := range gg.g.All() {
		if id, _ := labels.Get(c); id >= 0 || !gg.land(c, v) {
			continue
		}
		labels.FillSeq(flood.Fill(gg.g, c, gg.land, flood.WithConnectivity(gg.conn)), n)
		n++
	}

	return labels, n
}

// Component returns the cells of component i.
// Returns ErrComponentIndex if i is out of range.
func (gg *Graph[T]) Component(i int) ([]coord.Coord, error) {
	comps := gg.Components()
	if i < 0 || i >= len(comps) {
		return nil, fmt.Errorf("%w: %d of %d", ErrComponentIndex, i, len(comps))
	}

	return comps[i], nil
}

// ComponentOf returns the component containing c, or nil if c is water or
// out of bounds.
func (gg *Graph[T]) ComponentOf(c coord.Coord) []coord.Coord {
	return flood.Collect(gg.g, c, gg.land, flood.WithConnectivity(gg.conn))
}
