package gridgraph_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

// TestComponents_Simple4 checks two islands under orthogonal connectivity.
//
//	. # # .
//	# # . .
//	. . # #
func TestComponents_Simple4(t *testing.T) {
	gg := mustGraph(t, parse(t, ".##.", "##..", "..##"), coord.Conn4)

	want := [][]coord.Coord{
		{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0}},
		{{Row: 2, Col: 2}, {Row: 2, Col: 3}},
	}
	if diff := cmp.Diff(want, gg.Components()); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
}

// TestComponents_Diagonal8 joins corner-touching cells into one island.
func TestComponents_Diagonal8(t *testing.T) {
	g := parse(t,
		"#...#",
		".#.#.",
		"..#..",
		".#.#.",
		"#...#",
	)
	assert.Len(t, mustGraph(t, g, coord.Conn4).Components(), 9)

	comps := mustGraph(t, g, coord.Conn8).Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)
}

func TestComponents_NoLand(t *testing.T) {
	gg := mustGraph(t, parse(t, "...", "..."), coord.Conn8)
	assert.Empty(t, gg.Components())
	labels, n := gg.Label()
	assert.Zero(t, n)
	for _, v := range labels.All() {
		assert.Equal(t, -1, v)
	}
}

func TestLabel(t *testing.T) {
	gg := mustGraph(t, parse(t, ".##.", "##..", "..##"), coord.Conn4)
	labels, n := gg.Label()
	require.Equal(t, 2, n)

	glyph := func(v int) rune {
		if v < 0 {
			return '.'
		}
		return rune('0' + v)
	}
	assert.Equal(t, ". 0 0 .\n0 0 . .\n. . 1 1\n", labels.Format(glyph))
}

// TestLabel_AgreesWithComponents on random maps: every cell of component i
// carries label i, and water carries -1.
func TestLabel_AgreesWithComponents(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for trial := 0; trial < 40; trial++ {
		g := randomMap(rng, 1+rng.IntN(12), 1+rng.IntN(12))
		for _, conn := range []coord.Connectivity{coord.Conn4, coord.Conn8} {
			gg := mustGraph(t, g, conn)
			comps := gg.Components()
			labels, n := gg.Label()
			require.Equal(t, len(comps), n)

			total := 0
			for i, comp := range comps {
				for _, c := range comp {
					id, _ := labels.Get(c)
					assert.Equal(t, i, id, "trial %d: %v", trial, c)
				}
				total += len(comp)
			}
			for c, v := range g.All() {
				if v != '#' {
					id, _ := labels.Get(c)
					assert.Equal(t, -1, id)
				}
			}
			landCells := 0
			for _, v := range g.All() {
				if v == '#' {
					landCells++
				}
			}
			assert.Equal(t, landCells, total, "components partition the land")
		}
	}
}

func TestComponentAccessors(t *testing.T) {
	gg := mustGraph(t, parse(t, "#.#"), coord.Conn4)

	c, err := gg.Component(1)
	require.NoError(t, err)
	assert.Equal(t, []coord.Coord{{Row: 0, Col: 2}}, c)

	_, err = gg.Component(2)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, err = gg.Component(-1)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)

	assert.Equal(t, []coord.Coord{{Row: 0, Col: 0}}, gg.ComponentOf(coord.New(0, 0)))
	assert.Empty(t, gg.ComponentOf(coord.New(0, 1)))
	assert.Empty(t, gg.ComponentOf(coord.New(5, 5)))
}

func TestNew_Errors(t *testing.T) {
	g := parse(t, "#")
	_, err := gridgraph.New(nil, land, coord.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrGridNil)
	_, err = gridgraph.New(g, nil, coord.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrPredicateNil)
	_, err = gridgraph.New(g, land, coord.Connectivity(7))
	assert.ErrorIs(t, err, gridgraph.ErrConnectivity)
}
