package gridgraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/flood"
	"github.com/katalvlaran/lvlgrid/grid"
)

// New binds g, the land predicate and the adjacency rule.
// Returns ErrGridNil, ErrPredicateNil or ErrConnectivity on bad input.
// Complexity: O(1).
func New[T any](g *grid.Grid[T], land flood.Predicate[T], conn coord.Connectivity) (*Graph[T], error) {
	switch {
	case g == nil:
		return nil, ErrGridNil
	case land == nil:
		return nil, ErrPredicateNil
	case !conn.Valid():
		return nil, fmt.Errorf("%w: %v", ErrConnectivity, conn)
	}

	return &Graph[T]{g: g, land: land, conn: conn, offsets: conn.Offsets()}, nil
}

// Impassable returns a copy of gg whose Connect and Bridge never step onto a
// cell satisfying blocked. A nil blocked clears the restriction.
func (gg *Graph[T]) Impassable(blocked flood.Predicate[T]) *Graph[T] {
	cp := *gg
	cp.blocked = blocked
	return &cp
}

func (gg *Graph[T]) isBlocked(c coord.Coord) bool {
	if gg.blocked == nil {
		return false
	}
	v, ok := gg.g.Get(c)
	return ok && gg.blocked(c, v)
}

// Grid returns the underlying grid.
func (gg *Graph[T]) Grid() *grid.Grid[T] { return gg.g }

// Connectivity returns the adjacency rule.
func (gg *Graph[T]) Connectivity() coord.Connectivity { return gg.conn }

// IsLand reports whether c is in bounds and satisfies the land predicate.
func (gg *Graph[T]) IsLand(c coord.Coord) bool {
	v, ok := gg.g.Get(c)
	return ok && gg.land(c, v)
}

// Neighbors yields the in-bounds land neighbors of c.
func (gg *Graph[T]) Neighbors(c coord.Coord) coord.Seq {
	return func(yield func(coord.Coord) bool) {
		for _, d := range gg.offsets {
			n := c.Add(d)
			if gg.IsLand(n) && !yield(n) {
				return
			}
		}
	}
}

// NodeID returns the gonum node ID of c: its row-major index.
func (gg *Graph[T]) NodeID(c coord.Coord) (int64, bool) {
	i, ok := gg.g.Index(c)
	return int64(i), ok
}

// NodeCoord maps a node ID produced by ToGraph back to its coordinate.
func (gg *Graph[T]) NodeCoord(id int64) (coord.Coord, bool) {
	if id < 0 || id >= int64(gg.g.Len()) {
		return coord.Coord{}, false
	}
	return gg.g.CoordAt(int(id)), true
}

// ToGraph exports every land cell as a simple.Node (ID = row-major index) and
// joins adjacent land cells with an undirected edge. Water cells are absent.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *Graph[T]) ToGraph() *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for c, v := range gg.g.All() {
		if !gg.land(c, v) {
			continue
		}
		id, _ := gg.NodeID(c)
		if out.Node(id) == nil {
			out.AddNode(simple.Node(id))
		}
		for n := range gg.Neighbors(c) {
			nid, _ := gg.NodeID(n)
			if nid < id {
				// Added when n was visited.
				continue
			}
			out.SetEdge(simple.Edge{F: simple.Node(id), T: simple.Node(nid)})
		}
	}

	return out
}
