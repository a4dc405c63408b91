// Package gridgraph treats the cells of a grid.Grid that satisfy a predicate
// as the vertices of a graph, enabling component analysis and minimal-cost
// "island" bridging.
//
// What:
//
//   - Graph binds a grid, a flood.Predicate ("land") and a coord.Connectivity.
//   - Components finds connected regions of land cells (islands), seeded in
//     row-major order, each listed in flood (BFS) order.
//   - Label paints a component id per cell into a grid.Grid[int].
//   - Bridge/Connect compute a minimal conversion path (0-1 BFS) joining two
//     islands: entering land costs 0, entering water costs 1. Impassable
//     marks cells no bridge may cross.
//   - ToGraph exports the land cells to a gonum simple.UndirectedGraph for
//     use with gonum's graph algorithms (topo, path, ...).
//
// Why:
//
//   - BSP layouts: check that every room carved from pattern.Rect.BSP is
//     reachable, and carve the cheapest corridor when one is not.
//   - Label grids feed straight back into grid selection, e.g. recolouring
//     one cave without re-running a flood.
//   - gonum export hands the land graph to algorithms this package lacks.
//
// Complexity:
//
//   - Components, Label: O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//   - Connect, Bridge:   O(W×H×d), Memory: O(W×H).
//   - ToGraph:           O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrGridNil, ErrPredicateNil: New received nil input.
//   - ErrConnectivity: unknown coord.Connectivity.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrEmptyComponent: Connect received a set with no in-bounds cell.
//   - ErrNoPath: no conversion path exists between the two sets.
//
// A Graph does not copy the grid: every call observes the grid's current
// contents.
package gridgraph
