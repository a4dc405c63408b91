package flood

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/coord"
)

// Sentinel errors for flood traversals.
var (
	// ErrGridNil is reported when New receives a nil grid.
	ErrGridNil = errors.New("flood: grid is nil")

	// ErrPredicateNil is reported when New receives a nil predicate.
	ErrPredicateNil = errors.New("flood: predicate is nil")

	// ErrOptionViolation is reported when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flood: invalid option supplied")
)

// Predicate decides whether the cell at c with value v belongs to the region.
type Predicate[T any] func(c coord.Coord, v T) bool

// ValueFunc adapts a value-only test into a Predicate.
func ValueFunc[T any](fn func(v T) bool) Predicate[T] {
	return func(_ coord.Coord, v T) bool { return fn(v) }
}

// Equal accepts cells whose value equals want.
func Equal[T comparable](want T) Predicate[T] {
	return func(_ coord.Coord, v T) bool { return v == want }
}

// State is the lifecycle stage of an Iter.
type State int

const (
	// Pending: constructed, Next not called yet.
	Pending State = iota
	// Traversing: at least one Next call, frontier not yet empty.
	Traversing
	// Exhausted: nothing left to produce.
	Exhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Traversing:
		return "Traversing"
	case Exhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a traversal via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Iter.Err.
type Option func(*Options)

// Options holds traversal parameters and hooks.
type Options struct {
	// Conn selects 4- or 8-connectivity when Offsets is empty.
	Conn coord.Connectivity

	// Offsets, when non-empty, replaces the connectivity offsets.
	Offsets []coord.Coord

	// MaxCells, if > 0, ends the traversal after that many cells.
	MaxCells int

	// OnVisit is called for each produced cell with its BFS depth (start = 0).
	OnVisit func(c coord.Coord, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Conn4, no custom offsets, no limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Conn:    coord.Conn4,
		OnVisit: func(coord.Coord, int) {},
	}
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c coord.Connectivity) Option {
	return func(o *Options) {
		if !c.Valid() {
			o.err = fmt.Errorf("%w: unknown connectivity %v", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithOffsets sets a custom neighborhood, e.g. knight moves. At least one
// offset is required.
func WithOffsets(offsets ...coord.Coord) Option {
	return func(o *Options) {
		if len(offsets) == 0 {
			o.err = fmt.Errorf("%w: empty offset set", ErrOptionViolation)
			return
		}
		o.Offsets = append([]coord.Coord(nil), offsets...)
	}
}

// WithMaxCells stops the traversal after n cells.
//
//	n > 0: limit to n cells
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCells cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCells = n
	}
}

// WithOnVisit registers a hook run for every produced cell.
func WithOnVisit(fn func(c coord.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
