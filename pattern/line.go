package pattern

import "github.com/katalvlaran/lvlgrid/coord"

// Line is a straight segment between two cells, both included.
type Line struct {
	From, To coord.Coord
}

// LineSeq is shorthand for Line{From: a, To: b}.All().
func LineSeq(a, b coord.Coord) coord.Seq {
	return Line{From: a, To: b}.All()
}

// Len returns the number of cells on the line: max(|Δrow|, |Δcol|) + 1.
func (l Line) Len() int {
	d := l.To.Sub(l.From)
	return max(abs(d.Row), abs(d.Col)) + 1
}

// All traces Bresenham's algorithm from From to To. Each step advances one cell
// along the dominant axis and, when the error term drops below zero, one cell
// along the minor axis. When |Δrow| == |Δcol| rows are treated as dominant.
func (l Line) All() coord.Seq {
	return func(yield func(coord.Coord) bool) {
		d := l.To.Sub(l.From)
		rowStep := coord.New(sign(d.Row), 0)
		colStep := coord.New(0, sign(d.Col))

		major, minor := abs(d.Row), abs(d.Col)
		majorStep, minorStep := rowStep, colStep
		if abs(d.Col) > abs(d.Row) {
			major, minor = minor, major
			majorStep, minorStep = colStep, rowStep
		}

		// Doubled error term keeps the arithmetic integral.
		fault := major
		cur := l.From
		for i := 0; i <= major; i++ {
			if !yield(cur) {
				return
			}
			cur = cur.Add(majorStep)
			fault -= 2 * minor
			if fault < 0 {
				fault += 2 * major
				cur = cur.Add(minorStep)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
