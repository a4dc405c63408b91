// Package grid provides Grid[T], a dense rectangular store of cell values
// addressed by coord.Coord, and the selection operations that bind any
// coordinate sequence to it for reading or in-place mutation.
//
// What:
//
//   - New(width, height, fill) allocates width×height cells in row-major order.
//     The fill rule is either a constant (Fill) or a per-cell generator (Generate).
//   - Get/Set are bounds-checked. Get reports absence with ok=false; Set returns
//     ErrOutOfBounds. Neither panics.
//   - Select, SelectMut, SelectRef and Probe consume a coord.Seq: a pattern, a
//     flood traversal, or a hand-written slice.
//
// Bounds:
//
//	A coordinate c is in bounds iff 0 <= c.Row < Height and 0 <= c.Col < Width.
//
// Selection semantics:
//
//   - Read passes are lazy: a value is read when its coordinate is pulled.
//   - Write passes apply one cell at a time in sequence order; each write is
//     visible to the next step. Stopping early keeps what was already written.
//   - Out-of-bounds coordinates are skipped silently (Probe reports them).
//
// Concurrency:
//
//	Grid has no internal locking. One goroutine owns a grid at a time; running a
//	mutate pass while another iterator reads the same grid from a different
//	goroutine is a data race.
//
// Errors:
//
//   - ErrInvalidDimension: width or height is zero or negative.
//   - ErrOutOfBounds: a single access falls outside the grid.
//
// Complexity: Get/Set O(1); selection O(k) for a sequence of k coordinates.
package grid
