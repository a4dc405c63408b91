package gridgraph

import (
	"container/list"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/internal/logging"
)

// Bridge finds a minimum-conversion path of water cells connecting component
// srcComp to component dstComp, as numbered by Components. Each water cell
// on the path costs 1. Returns the path (including the start and end land
// cells) and the total conversion cost.
// Returns ErrComponentIndex for an out-of-range index, ErrNoPath if the
// components cannot be joined.
func (gg *Graph[T]) Bridge(srcComp, dstComp int) (path []coord.Coord, cost int, err error) {
	comps := gg.Components()
	for _, i := range [2]int{srcComp, dstComp} {
		if i < 0 || i >= len(comps) {
			return nil, 0, fmt.Errorf("%w: %d of %d", ErrComponentIndex, i, len(comps))
		}
	}

	return gg.Connect(comps[srcComp], comps[dstComp])
}

// Connect runs a multi-source 0-1 BFS from every in-bounds cell of src:
//   - moving into a land cell  → cost 0
//   - moving into a water cell → cost 1
//
// and stops at the first cell of dst reached. Source cells cost nothing
// whatever their value. Movement follows the Graph's connectivity and never
// enters a cell marked by Impassable.
// Returns ErrEmptyComponent if src or dst has no in-bounds cell and ErrNoPath
// if impassable cells cut every route to dst.
//
// Complexity: O(W·H·d) time, Memory: O(W·H) for distance and prev arrays.
func (gg *Graph[T]) Connect(src, dst []coord.Coord) (path []coord.Coord, cost int, err error) {
	dstSet := make(map[int]struct{}, len(dst))
	for _, c := range dst {
		if i, ok := gg.g.Index(c); ok {
			dstSet[i] = struct{}{}
		}
	}
	if len(dstSet) == 0 {
		return nil, 0, fmt.Errorf("%w: target", ErrEmptyComponent)
	}

	n := gg.g.Len()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back.
	dq := list.New()
	for _, c := range src {
		if i, ok := gg.g.Index(c); ok && dist[i] != 0 {
			dist[i] = 0
			dq.PushBack(i)
		}
	}
	if dq.Len() == 0 {
		return nil, 0, fmt.Errorf("%w: source", ErrEmptyComponent)
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		uc := gg.g.CoordAt(u)
		for _, d := range gg.offsets {
			vc := uc.Add(d)
			v, ok := gg.g.Index(vc)
			if !ok || gg.isBlocked(vc) {
				continue
			}
			step := 1
			if gg.IsLand(vc) {
				step = 0
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.g.CoordAt(at))
	}
	slices.Reverse(path)
	logging.Debug("gridgraph: bridge", "from", path[0], "to", path[len(path)-1], "cost", dist[target])

	return path, dist[target], nil
}
