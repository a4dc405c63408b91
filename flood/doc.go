// Package flood implements a lazy flood-fill iterator over a grid.Grid.
//
// What:
//
//   - Starting from one cell, visit every cell reachable through 4- or
//     8-connected (or custom-offset) neighbors whose value satisfies a predicate.
//   - Coordinates are produced one at a time, as they are confirmed, through
//     Iter.Next or the coord.Seq returned by Iter.All, so a traversal composes
//     directly with grid selection without collecting first.
//
// State machine:
//
//	Pending ──first Next──▶ Traversing ──frontier empty / MaxCells──▶ Exhausted
//
// An Iter is single-pass: once Exhausted it stays Exhausted. Build a new Iter
// to traverse again.
//
// Guarantees:
//
//   - The start cell is produced iff it is in bounds and accepted by the predicate;
//     otherwise the traversal is empty.
//   - Neighbors are bounds-checked before the predicate runs, so predicates never
//     see out-of-range coordinates.
//   - No coordinate is produced twice (row-major visited bitmap).
//   - Order is breadth-first with neighbors taken in offset order, hence
//     deterministic for a fixed grid, start, predicate and options.
//   - A neighbor is accepted when it is discovered. Mutating cells that were
//     already produced does not change the traversal, so a mutate pass can be
//     driven directly by Iter.All.
//
// Options:
//
//   - WithConnectivity(coord.Conn4 | coord.Conn8)  (default Conn4)
//   - WithOffsets(offsets...)                      custom adjacency, overrides connectivity
//   - WithMaxCells(n)                              stop after n cells (0 = unlimited)
//   - WithOnVisit(fn)                              hook called with each cell and its BFS depth
//
// Errors (reported by Iter.Err; the traversal is then empty):
//
//   - ErrGridNil, ErrPredicateNil
//   - ErrOptionViolation for unknown connectivity, empty offsets or negative MaxCells.
//
// Complexity: O(W×H×d) time, O(W×H) memory for the visited bitmap (d = number of offsets).
package flood
