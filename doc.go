// Package lvlgrid is an in-memory toolkit for dense 2D grids: the grid itself,
// the coordinate patterns you draw with, and the traversals you search with.
//
// What is lvlgrid?
//
//	A small, dependency-light library built around one idea: many algorithms
//	produce coordinates, one mechanism consumes them.
//		• Producers: lines, rectangles, BSP room layouts, neighbor sets,
//		  circles, clusters, flood fills
//		• Consumer: grid selection (read pass or mutate pass)
//
// Every producer returns a coord.Seq (an iter.Seq[coord.Coord]), so a flood
// result can be fed straight into a mutate pass and a line can be chained with a
// rectangle border without any glue code.
//
// Subpackages:
//
//	coord/      Coord value type, direction constants, 4-/8-connectivity offsets
//	grid/       Grid[T]: bounds-checked Get/Set, selection (Select, SelectMut)
//	pattern/    Line, Rect (interior/border/BSP), Neighbors, Cluster, Circle, Region
//	flood/      lazy flood-fill iterator with a coordinate-aware predicate
//	gridgraph/  components, island bridging and gonum graph export on top of flood
//
// Quick ASCII example (5×5, '#' drawn by pattern.Rect.Border, '.' filled by flood):
//
//	# # # # #
//	# . . . #
//	# . . . #
//	# . . . #
//	# # # # #
//
// Logging is silent by default; see SetLogger.
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
