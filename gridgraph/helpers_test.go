package gridgraph_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/flood"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

// land marks '#' cells; everything else is water.
var land = flood.Equal('#')

// parse builds a rune grid from equal-length rows.
func parse(t testing.TB, rows ...string) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.New(len(rows[0]), len(rows), grid.Generate(func(c coord.Coord) rune {
		return rune(rows[c.Row][c.Col])
	}))
	require.NoError(t, err)
	return g
}

func mustGraph(t testing.TB, g *grid.Grid[rune], conn coord.Connectivity) *gridgraph.Graph[rune] {
	t.Helper()
	gg, err := gridgraph.New(g, land, conn)
	require.NoError(t, err)
	return gg
}

// canonical sorts each component and then the components by first cell.
func canonical(comps [][]coord.Coord) [][]coord.Coord {
	out := make([][]coord.Coord, len(comps))
	for i, c := range comps {
		out[i] = slices.Clone(c)
		slices.SortFunc(out[i], coord.Compare)
	}
	slices.SortFunc(out, func(a, b []coord.Coord) int { return coord.Compare(a[0], b[0]) })
	return out
}

// randomMap returns a w×h map with roughly half of its cells land.
func randomMap(rng *rand.Rand, w, h int) *grid.Grid[rune] {
	return grid.MustNew(w, h, grid.Generate(func(coord.Coord) rune {
		if rng.IntN(2) == 0 {
			return '#'
		}
		return '.'
	}))
}
