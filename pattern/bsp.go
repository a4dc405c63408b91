package pattern

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lvlgrid/internal/logging"
)

// Orientation names the direction of a BSP cut line.
type Orientation int

const (
	// Horizontal cuts with a horizontal line, splitting rows (top / bottom).
	Horizontal Orientation = iota
	// Vertical cuts with a vertical line, splitting columns (left / right).
	Vertical
)

// Orthogonal returns the other orientation.
func (o Orientation) Orthogonal() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Cut describes one BSP split: Horizontal cuts after At rows, Vertical after
// At columns.
type Cut struct {
	Orientation Orientation
	At          int
}

// Splitter decides how to split r. hint is the orientation orthogonal to the
// parent's cut (the start orientation at the root). Returning ok=false makes r
// a leaf.
type Splitter func(r Rect, hint Orientation) (cut Cut, ok bool)

// BSPTree is a binary space partition of a rectangle. Leaves have nil children.
type BSPTree struct {
	Rect        Rect
	Left, Right *BSPTree // top/left and bottom/right halves of Rect
}

// IsLeaf reports whether t was not split.
func (t *BSPTree) IsLeaf() bool {
	return t.Left == nil && t.Right == nil
}

// Leaves returns the unsplit rectangles in generation order (top/left first).
// They are non-overlapping and together cover the root rectangle.
func (t *BSPTree) Leaves() []Rect {
	var out []Rect
	t.collect(&out)
	return out
}

func (t *BSPTree) collect(out *[]Rect) {
	if t.IsLeaf() {
		*out = append(*out, t.Rect)
		return
	}
	t.Left.collect(out)
	t.Right.collect(out)
}

// Depth returns the number of levels below t; a leaf has depth 0.
func (t *BSPTree) Depth() int {
	if t.IsLeaf() {
		return 0
	}
	return 1 + max(t.Left.Depth(), t.Right.Depth())
}

// BSP recursively partitions r. split is asked about every rectangle; a cut
// that would leave an empty part is treated as "no split", so recursion always
// terminates.
func (r Rect) BSP(start Orientation, split Splitter) *BSPTree {
	t := r.bsp(start, split)
	logging.Debug("pattern: bsp", "rect", r, "depth", t.Depth())
	return t
}

func (r Rect) bsp(hint Orientation, split Splitter) *BSPTree {
	node := &BSPTree{Rect: r}
	if r.Empty() {
		return node
	}
	cut, ok := split(r, hint)
	if !ok {
		return node
	}
	var a, b Rect
	switch cut.Orientation {
	case Horizontal:
		a, b = r.SplitRows(cut.At)
	case Vertical:
		a, b = r.SplitCols(cut.At)
	default:
		return node
	}
	if a.Empty() || b.Empty() {
		return node
	}
	next := cut.Orientation.Orthogonal()
	node.Left = a.bsp(next, split)
	node.Right = b.bsp(next, split)

	return node
}

// Longest returns the orientation that cuts r across its longer side:
// Horizontal for tall rectangles, Vertical for wide ones, hint for squares.
func Longest(r Rect, hint Orientation) Orientation {
	switch {
	case r.Height > r.Width:
		return Horizontal
	case r.Width > r.Height:
		return Vertical
	default:
		return hint
	}
}

// span returns the side length a cut with orientation o divides.
func span(r Rect, o Orientation) int {
	if o == Horizontal {
		return r.Height
	}
	return r.Width
}

// splittable reports whether r can be cut along o into two parts of at least
// minSize, and that neither side of r is already below the floor.
func splittable(r Rect, o Orientation, minSize int) bool {
	if r.Width < minSize || r.Height < minSize {
		return false
	}
	return span(r, o) >= 2*minSize
}

// HalvingSplitter cuts every rectangle in half across its longer side until a
// half would fall below minSize. Deterministic.
// Panics if minSize < 1.
func HalvingSplitter(minSize int) Splitter {
	if minSize < 1 {
		panic("pattern: HalvingSplitter(minSize<1)")
	}
	return func(r Rect, hint Orientation) (Cut, bool) {
		o := Longest(r, hint)
		if !splittable(r, o, minSize) {
			return Cut{}, false
		}
		return Cut{Orientation: o, At: span(r, o) / 2}, true
	}
}

// SplitRatio cuts across the longer side at ratio of its length, clamped so
// both parts keep at least minSize cells.
// Panics if ratio is not in (0,1) or minSize < 1.
func SplitRatio(ratio float64, minSize int) Splitter {
	if !(ratio > 0 && ratio < 1) {
		panic("pattern: SplitRatio(ratio outside (0,1))")
	}
	if minSize < 1 {
		panic("pattern: SplitRatio(minSize<1)")
	}
	return func(r Rect, hint Orientation) (Cut, bool) {
		o := Longest(r, hint)
		if !splittable(r, o, minSize) {
			return Cut{}, false
		}
		n := span(r, o)
		at := min(max(int(float64(n)*ratio), minSize), n-minSize)
		return Cut{Orientation: o, At: at}, true
	}
}

// RandomSplitter cuts across the longer side at a uniformly random position
// that keeps both parts at least minSize. Pass a seeded rng for reproducible
// layouts, e.g. rand.New(rand.NewPCG(seed, 0)).
// Panics if rng is nil or minSize < 1.
func RandomSplitter(minSize int, rng *rand.Rand) Splitter {
	if rng == nil {
		panic("pattern: RandomSplitter(rng=nil)")
	}
	if minSize < 1 {
		panic("pattern: RandomSplitter(minSize<1)")
	}
	return func(r Rect, hint Orientation) (Cut, bool) {
		o := Longest(r, hint)
		if !splittable(r, o, minSize) {
			return Cut{}, false
		}
		n := span(r, o)
		return Cut{Orientation: o, At: minSize + rng.IntN(n-2*minSize+1)}, true
	}
}

// Alternating halves every rectangle across the hint orientation, so cuts
// alternate between horizontal and vertical regardless of shape.
// Panics if minSize < 1.
func Alternating(minSize int) Splitter {
	if minSize < 1 {
		panic("pattern: Alternating(minSize<1)")
	}
	return func(r Rect, hint Orientation) (Cut, bool) {
		if !splittable(r, hint, minSize) {
			return Cut{}, false
		}
		return Cut{Orientation: hint, At: span(r, hint) / 2}, true
	}
}
