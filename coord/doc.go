// Package coord defines the integer (row, column) position shared by every
// lvlgrid package, together with direction constants, neighbor offset sets and
// the Seq type that all coordinate producers return.
//
// What:
//
//   - Coord is a comparable value type: use it as a map key, copy it freely.
//   - Ordering is row-major (row first, then column); see Compare.
//   - Arithmetic is plain unchecked int arithmetic.
//   - Seq is iter.Seq[Coord]: lines, rectangles, neighbor sets and flood
//     traversals all produce one, and grid selection consumes any of them.
//
// Connectivity:
//
//   - Conn4: N, E, S, W (von Neumann neighborhood).
//   - Conn8: N, NE, E, SE, S, SW, W, NW (Moore neighborhood).
//
// Axes: Row grows downwards (South), Col grows to the right (East).
package coord
