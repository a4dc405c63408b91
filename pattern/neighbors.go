package pattern

import "github.com/katalvlaran/lvlgrid/coord"

// Neighbors yields the cells adjacent to center under conn, clockwise from
// North. Unknown connectivity values yield nothing.
func Neighbors(center coord.Coord, conn coord.Connectivity) coord.Seq {
	return coord.Anchor(center, conn.Offsets())
}

// NeighborsOf yields center+o for each custom offset o, in the given order.
func NeighborsOf(center coord.Coord, offsets ...coord.Coord) coord.Seq {
	return coord.Anchor(center, offsets)
}

// Cluster yields the interiors of rects one after another, in argument order.
// Overlapping rectangles produce duplicate coordinates; pipe through Dedup or
// build a Region when set semantics are needed.
func Cluster(rects ...Rect) coord.Seq {
	return func(yield func(coord.Coord) bool) {
		for _, r := range rects {
			for c := range r.Interior() {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// ClusterBorders is Cluster over the rectangles' borders.
func ClusterBorders(rects ...Rect) coord.Seq {
	return func(yield func(coord.Coord) bool) {
		for _, r := range rects {
			for c := range r.Border() {
				if !yield(c) {
					return
				}
			}
		}
	}
}
