package pattern_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/pattern"
)

// ExampleLine traces a shallow segment: columns advance every step, rows only
// when the error term runs out.
func ExampleLine() {
	for c := range pattern.LineSeq(coord.New(0, 0), coord.New(2, 5)) {
		fmt.Print(c, " ")
	}
	fmt.Println()
	// Output:
	// (0,0) (0,1) (1,2) (1,3) (2,4) (2,5)
}

// ExampleRect_BSP splits a 16×16 area into equal 8×8 rooms.
func ExampleRect_BSP() {
	tree := pattern.NewRect(0, 0, 16, 16).BSP(pattern.Horizontal, pattern.HalvingSplitter(8))
	for _, room := range tree.Leaves() {
		fmt.Printf("room at (%d,%d) %dx%d\n", room.Top, room.Left, room.Width, room.Height)
	}
	// Output:
	// room at (0,0) 8x8
	// room at (0,8) 8x8
	// room at (8,0) 8x8
	// room at (8,8) 8x8
}

// ExampleRandomSplitter shows reproducible random layouts via a fixed seed.
func ExampleRandomSplitter() {
	root := pattern.NewRect(0, 0, 40, 30)
	a := root.BSP(pattern.Vertical, pattern.RandomSplitter(6, rand.New(rand.NewPCG(1, 2)))).Leaves()
	b := root.BSP(pattern.Vertical, pattern.RandomSplitter(6, rand.New(rand.NewPCG(1, 2)))).Leaves()
	fmt.Println(len(a) == len(b), pattern.Count(pattern.Cluster(a...)) == root.Area())
	// Output:
	// true true
}
