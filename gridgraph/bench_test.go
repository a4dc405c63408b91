package gridgraph_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/flood"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

// BenchmarkComponents measures Components on a random 1000×1000 map with
// values in [0,4]; values >= 1 are land.
// Complexity: O(W×H×d)
func BenchmarkComponents(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewPCG(42, 0))
	g := grid.MustNew(n, n, grid.Generate(func(coord.Coord) int { return rng.IntN(5) }))
	gg, err := gridgraph.New(g, flood.ValueFunc(func(v int) bool { return v >= 1 }), coord.Conn4)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Components()
	}
}

// BenchmarkBridge measures Bridge on a 1000×1000 water map with two 1-cell
// islands at opposite corners.
// Complexity: O(W×H×d)
func BenchmarkBridge(b *testing.B) {
	const n = 1000
	g := grid.MustNew(n, n, grid.Fill(0))
	_ = g.Set(coord.New(0, 0), 1)
	_ = g.Set(coord.New(n-1, n-1), 1)
	gg, err := gridgraph.New(g, flood.Equal(1), coord.Conn4)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := gg.Bridge(0, 1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkToGraph measures gonum export of an all-land 300×300 map.
func BenchmarkToGraph(b *testing.B) {
	const n = 300
	g := grid.MustNew(n, n, grid.Fill(true))
	gg, _ := gridgraph.New(g, flood.Equal(true), coord.Conn8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ToGraph()
	}
}
