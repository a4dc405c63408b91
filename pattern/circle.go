package pattern

import "github.com/katalvlaran/lvlgrid/coord"

// Circle is the outline of a digital circle.
type Circle struct {
	Center coord.Coord
	Radius int
}

// All traces the midpoint (Bresenham) circle algorithm, mirroring each step
// into all eight octants and skipping cells already produced. Radius 0 yields
// just the center; a negative radius yields nothing.
func (c Circle) All() coord.Seq {
	return func(yield func(coord.Coord) bool) {
		if c.Radius < 0 {
			return
		}
		seen := make(map[coord.Coord]struct{}, 8*(c.Radius+1))
		emit := func(dr, dc int) bool {
			for _, p := range [8]coord.Coord{
				{Row: dr, Col: dc}, {Row: dc, Col: dr},
				{Row: dc, Col: -dr}, {Row: dr, Col: -dc},
				{Row: -dr, Col: -dc}, {Row: -dc, Col: -dr},
				{Row: -dc, Col: dr}, {Row: -dr, Col: dc},
			} {
				q := c.Center.Add(p)
				if _, dup := seen[q]; dup {
					continue
				}
				seen[q] = struct{}{}
				if !yield(q) {
					return false
				}
			}
			return true
		}

		x, y := 0, c.Radius
		d := 3 - 2*c.Radius
		if !emit(-y, x) {
			return
		}
		for y > x {
			x++
			if d > 0 {
				y--
				d += 4*(x-y) + 10
			} else {
				d += 4*x + 6
			}
			if !emit(-y, x) {
				return
			}
		}
	}
}
