package pattern_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/pattern"
)

// assertTiling checks that leaves cover root exactly once.
func assertTiling(t *testing.T, root pattern.Rect, leaves []pattern.Rect) {
	t.Helper()
	total := 0
	for i, a := range leaves {
		total += a.Area()
		assert.Equal(t, a, root.Intersect(a), "leaf %v escapes root", a)
		for _, b := range leaves[i+1:] {
			assert.False(t, a.Overlaps(b), "leaves %v and %v overlap", a, b)
		}
	}
	assert.Equal(t, root.Area(), total)
}

func TestBSP_HalvingEqualPieces(t *testing.T) {
	root := pattern.NewRect(0, 0, 16, 16)
	tree := root.BSP(pattern.Horizontal, pattern.HalvingSplitter(4))
	leaves := tree.Leaves()

	require.Len(t, leaves, 16)
	for _, l := range leaves {
		assert.Equal(t, 16, l.Area())
		assert.Equal(t, 4, l.Width)
	}
	assert.Equal(t, 4, tree.Depth())
	assertTiling(t, root, leaves)
}

func TestBSP_RandomRespectsFloor(t *testing.T) {
	const minSize = 5
	root := pattern.NewRect(0, 0, 64, 40)
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 0))
		leaves := root.BSP(pattern.Vertical, pattern.RandomSplitter(minSize, rng)).Leaves()
		require.Greater(t, len(leaves), 1)
		assertTiling(t, root, leaves)
		for _, l := range leaves {
			assert.GreaterOrEqual(t, l.Width, minSize, "seed %d leaf %v", seed, l)
			assert.GreaterOrEqual(t, l.Height, minSize, "seed %d leaf %v", seed, l)
			// No leaf could have been split again along its longer side.
			assert.Less(t, max(l.Width, l.Height), 2*minSize, "seed %d leaf %v", seed, l)
		}
	}
}

func TestBSP_RandomDeterministicPerSeed(t *testing.T) {
	root := pattern.NewRect(0, 0, 50, 50)
	a := root.BSP(pattern.Horizontal, pattern.RandomSplitter(6, rand.New(rand.NewPCG(42, 0)))).Leaves()
	b := root.BSP(pattern.Horizontal, pattern.RandomSplitter(6, rand.New(rand.NewPCG(42, 0)))).Leaves()
	assert.Equal(t, a, b)
}

func TestBSP_SplitRatio(t *testing.T) {
	root := pattern.NewRect(0, 0, 20, 10)
	tree := root.BSP(pattern.Horizontal, pattern.SplitRatio(0.25, 4))
	require.False(t, tree.IsLeaf())
	// Wide root: first cut is vertical at 25% of 20 columns.
	assert.Equal(t, pattern.NewRect(0, 0, 5, 10), tree.Left.Rect)
	assert.Equal(t, pattern.NewRect(0, 5, 15, 10), tree.Right.Rect)
	assertTiling(t, root, tree.Leaves())
}

func TestBSP_Alternating(t *testing.T) {
	root := pattern.NewRect(0, 0, 8, 8)
	tree := root.BSP(pattern.Horizontal, pattern.Alternating(2))
	assert.Equal(t, pattern.NewRect(0, 0, 8, 4), tree.Left.Rect)
	leaves := tree.Leaves()
	assert.Len(t, leaves, 16)
	assertTiling(t, root, leaves)
}

func TestBSP_Termination(t *testing.T) {
	// A splitter that always asks for an empty part must not recurse forever.
	bad := func(r pattern.Rect, o pattern.Orientation) (pattern.Cut, bool) {
		return pattern.Cut{Orientation: o, At: 0}, true
	}
	tree := pattern.NewRect(0, 0, 10, 10).BSP(pattern.Vertical, bad)
	assert.True(t, tree.IsLeaf())

	unknown := func(pattern.Rect, pattern.Orientation) (pattern.Cut, bool) {
		return pattern.Cut{Orientation: pattern.Orientation(9), At: 2}, true
	}
	assert.True(t, pattern.NewRect(0, 0, 10, 10).BSP(pattern.Vertical, unknown).IsLeaf())

	empty := pattern.NewRect(0, 0, 0, 5).BSP(pattern.Horizontal, pattern.HalvingSplitter(1))
	assert.True(t, empty.IsLeaf())
	assert.Equal(t, 0, empty.Depth())
}

func TestBSP_TooSmall(t *testing.T) {
	// 20×3 with floor 4: the short side is already below the floor.
	tree := pattern.NewRect(0, 0, 20, 3).BSP(pattern.Vertical, pattern.HalvingSplitter(4))
	assert.True(t, tree.IsLeaf())
}

func TestSplitters_PanicOnBadConfig(t *testing.T) {
	assert.Panics(t, func() { pattern.HalvingSplitter(0) })
	assert.Panics(t, func() { pattern.Alternating(0) })
	assert.Panics(t, func() { pattern.SplitRatio(0, 2) })
	assert.Panics(t, func() { pattern.SplitRatio(1, 2) })
	assert.Panics(t, func() { pattern.SplitRatio(0.5, 0) })
	assert.Panics(t, func() { pattern.RandomSplitter(2, nil) })
	assert.Panics(t, func() { pattern.RandomSplitter(0, rand.New(rand.NewPCG(1, 1))) })
}

func TestOrientation(t *testing.T) {
	assert.Equal(t, pattern.Vertical, pattern.Horizontal.Orthogonal())
	assert.Equal(t, pattern.Horizontal, pattern.Vertical.Orthogonal())
	assert.Equal(t, "Horizontal", pattern.Horizontal.String())
	assert.Equal(t, "Orientation(5)", pattern.Orientation(5).String())

	assert.Equal(t, pattern.Horizontal, pattern.Longest(pattern.NewRect(0, 0, 2, 9), pattern.Vertical))
	assert.Equal(t, pattern.Vertical, pattern.Longest(pattern.NewRect(0, 0, 9, 2), pattern.Horizontal))
	assert.Equal(t, pattern.Vertical, pattern.Longest(pattern.NewRect(0, 0, 3, 3), pattern.Vertical))
}
