package coord

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// ErrParse indicates a string could not be parsed as a Coord.
var ErrParse = errors.New("coord: cannot parse coordinate")

// Coord is an integer grid position. The zero value is the origin.
type Coord struct {
	Row, Col int
}

// Seq is a sequence of coordinates. Restartable producers (patterns) may be
// ranged over many times; single-pass producers (flood traversals) only once.
type Seq = iter.Seq[Coord]

// New returns the Coord (row, col).
func New(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns c + o, component-wise.
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Sub returns c - o, component-wise.
func (c Coord) Sub(o Coord) Coord {
	return Coord{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

// Offset returns c shifted by (dRow, dCol).
func (c Coord) Offset(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord {
	return Coord{Row: c.Row * k, Col: c.Col * k}
}

// Neg returns -c.
func (c Coord) Neg() Coord {
	return Coord{Row: -c.Row, Col: -c.Col}
}

// Transpose swaps row and column.
func (c Coord) Transpose() Coord {
	return Coord{Row: c.Col, Col: c.Row}
}

// Less reports whether c sorts before o in row-major order.
func (c Coord) Less(o Coord) bool {
	return Compare(c, o) < 0
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ")"
}

// Compare orders coordinates row-major: by Row, then by Col.
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func Compare(a, b Coord) int {
	if r := cmp.Compare(a.Row, b.Row); r != 0 {
		return r
	}
	return cmp.Compare(a.Col, b.Col)
}

// Parse reads "r,c" or "(r,c)"; surrounding and inner spaces are ignored.
func Parse(s string) (Coord, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")
	rs, cs, ok := strings.Cut(t, ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q: missing comma", ErrParse, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: row: %v", ErrParse, s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: col: %v", ErrParse, s, err)
	}
	return Coord{Row: r, Col: c}, nil
}
