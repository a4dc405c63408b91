package flood

import (
	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/internal/logging"
)

// frontierItem pairs a confirmed coordinate with its BFS depth.
type frontierItem struct {
	at    coord.Coord
	depth int
}

// Iter is a single-pass flood-fill traversal. It borrows the grid: the grid
// must outlive the Iter, and no other goroutine may mutate it meanwhile.
type Iter[T any] struct {
	g       *grid.Grid[T]
	start   coord.Coord
	pred    Predicate[T]
	opts    Options
	offsets []coord.Coord

	state    State
	err      error
	visited  []bool
	frontier []frontierItem
	head     int
	produced int
}

// New prepares a traversal from start. Nothing is evaluated until the first
// call to Next. Configuration errors are reported by Err and make the
// traversal empty.
func New[T any](g *grid.Grid[T], start coord.Coord, pred Predicate[T], opts ...Option) *Iter[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	it := &Iter[T]{g: g, start: start, pred: pred, opts: o}
	switch {
	case g == nil:
		it.err = ErrGridNil
	case pred == nil:
		it.err = ErrPredicateNil
	case o.err != nil:
		it.err = o.err
	}
	it.offsets = o.Offsets
	if len(it.offsets) == 0 {
		it.offsets = o.Conn.Offsets()
	}

	return it
}

// State reports the lifecycle stage.
func (it *Iter[T]) State() State { return it.state }

// Err returns the configuration error, if any.
func (it *Iter[T]) Err() error { return it.err }

// Visited returns how many coordinates have been produced so far.
func (it *Iter[T]) Visited() int { return it.produced }

// Next produces the next coordinate of the region. ok is false once the
// traversal is exhausted.
func (it *Iter[T]) Next() (c coord.Coord, ok bool) {
	switch it.state {
	case Exhausted:
		return c, false
	case Pending:
		it.state = Traversing
		if it.err != nil {
			it.exhaust()
			return c, false
		}
		it.seed()
	}

	if it.opts.MaxCells > 0 && it.produced >= it.opts.MaxCells {
		it.exhaust()
		return c, false
	}
	if it.head == len(it.frontier) {
		it.exhaust()
		return c, false
	}

	cur := it.frontier[it.head]
	it.head++
	it.expand(cur)
	it.produced++
	it.opts.OnVisit(cur.at, cur.depth)

	return cur.at, true
}

// All returns the remaining traversal as a coord.Seq. Ranging it drives Next;
// breaking out leaves the Iter where it stopped, and a second range resumes
// from there (or yields nothing once exhausted).
func (it *Iter[T]) All() coord.Seq {
	return func(yield func(coord.Coord) bool) {
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// seed allocates the visited bitmap and enqueues start if it qualifies.
func (it *Iter[T]) seed() {
	it.visited = make([]bool, it.g.Len())
	it.frontier = make([]frontierItem, 0, 16)
	it.accept(it.start, 0)
}

// accept marks c visited and enqueues it when it is in bounds, unvisited and
// satisfies the predicate.
func (it *Iter[T]) accept(c coord.Coord, depth int) {
	idx, ok := it.g.Index(c)
	if !ok || it.visited[idx] {
		return
	}
	v, _ := it.g.Get(c)
	if !it.pred(c, v) {
		return
	}
	it.visited[idx] = true
	it.frontier = append(it.frontier, frontierItem{at: c, depth: depth})
}

// expand discovers the neighbors of cur.
func (it *Iter[T]) expand(cur frontierItem) {
	for _, d := range it.offsets {
		it.accept(cur.at.Add(d), cur.depth+1)
	}
}

// exhaust moves to Exhausted and drops the traversal state.
func (it *Iter[T]) exhaust() {
	it.state = Exhausted
	it.visited = nil
	it.frontier = nil
	it.head = 0
	logging.Debug("flood: exhausted", "start", it.start, "visited", it.produced, "err", it.err)
}

// Fill is New(...).All(): the single-pass region of start as a coord.Seq.
func Fill[T any](g *grid.Grid[T], start coord.Coord, pred Predicate[T], opts ...Option) coord.Seq {
	return New(g, start, pred, opts...).All()
}

// Collect runs a whole traversal and returns the region in visit order.
func Collect[T any](g *grid.Grid[T], start coord.Coord, pred Predicate[T], opts ...Option) []coord.Coord {
	var out []coord.Coord
	for c := range Fill(g, start, pred, opts...) {
		out = append(out, c)
	}
	return out
}
