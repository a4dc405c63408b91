package gridgraph

import (
	"errors"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/flood"
	"github.com/katalvlaran/lvlgrid/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrGridNil indicates New received a nil grid.
	ErrGridNil = errors.New("gridgraph: grid is nil")
	// ErrPredicateNil indicates New received a nil predicate.
	ErrPredicateNil = errors.New("gridgraph: predicate is nil")
	// ErrConnectivity indicates an unknown connectivity value.
	ErrConnectivity = errors.New("gridgraph: unknown connectivity")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrEmptyComponent indicates a source or target set has no in-bounds cell.
	ErrEmptyComponent = errors.New("gridgraph: empty component")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Graph views the land cells of a grid as a graph. It borrows the grid.
type Graph[T any] struct {
	g       *grid.Grid[T]
	land    flood.Predicate[T]
	conn    coord.Connectivity
	offsets []coord.Coord
	blocked flood.Predicate[T]
}
