// Package pattern generates coordinate sequences: lines, rectangles, binary
// space partitions, neighbor sets, clusters and circles, plus a Region set
// type and small combinators for chaining and filtering sequences.
//
// What:
//
//   - Every generator returns a coord.Seq that can be ranged over any number of
//     times and always yields the same coordinates in the same order.
//   - Patterns know nothing about grids. They may produce coordinates outside any
//     particular grid; grid selection skips those, or use Clip with an explicit
//     bounding Rect.
//
// Generators:
//
//   - Line:      Bresenham segment, both endpoints included, max(|Δr|,|Δc|)+1 cells.
//   - Rect:      Interior (w×h cells) or Border (2w+2h-4 cells for w,h >= 2),
//     both row-major. Width or height <= 0 yields nothing.
//   - BSP:       Rect.BSP splits recursively with a caller-supplied Splitter;
//     HalvingSplitter, SplitRatio and RandomSplitter never cut below a
//     minimum side length.
//   - Neighbors: 4-/8-connected or custom offsets around a center.
//   - Cluster:   concatenated interiors of several rectangles, duplicates kept.
//   - Circle:    midpoint circle outline without duplicates.
//
// Region:
//
//	A set of coordinates with three layers under Moore adjacency: Interior
//	(members with no outside neighbor), InternalBorder (members touching the
//	outside) and ExternalBorder (non-members touching a member).
//
// Complexity: every generator is O(k) for k produced coordinates; Circle and
// Region keep an O(k) set.
package pattern
