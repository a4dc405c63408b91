package pattern

import "github.com/katalvlaran/lvlgrid/coord"

// Rect is an axis-aligned rectangle of cells. Top/Left is the first cell;
// Bottom() and Right() are exclusive. A Rect with Width <= 0 or Height <= 0 is
// empty and produces no coordinates.
type Rect struct {
	Top, Left     int
	Width, Height int
}

// NewRect returns the rectangle whose top-left cell is (top, left).
func NewRect(top, left, width, height int) Rect {
	return Rect{Top: top, Left: left, Width: width, Height: height}
}

// RectCorners returns the smallest rectangle containing both a and b, given as
// any two opposite corners (inclusive).
func RectCorners(a, b coord.Coord) Rect {
	top, bottom := min(a.Row, b.Row), max(a.Row, b.Row)
	left, right := min(a.Col, b.Col), max(a.Col, b.Col)
	return Rect{Top: top, Left: left, Width: right - left + 1, Height: bottom - top + 1}
}

// Min returns the top-left cell.
func (r Rect) Min() coord.Coord { return coord.New(r.Top, r.Left) }

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Right returns the first column right of the rectangle.
func (r Rect) Right() int { return r.Left + r.Width }

// Empty reports whether r has no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Area returns the number of cells, 0 for an empty rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Center returns the middle cell, rounding towards the top-left.
func (r Rect) Center() coord.Coord {
	return coord.New(r.Top+(r.Height-1)/2, r.Left+(r.Width-1)/2)
}

// Contains reports whether c is one of r's cells.
func (r Rect) Contains(c coord.Coord) bool {
	return c.Row >= r.Top && c.Row < r.Bottom() && c.Col >= r.Left && c.Col < r.Right()
}

// Translate shifts r by d.
func (r Rect) Translate(d coord.Coord) Rect {
	r.Top += d.Row
	r.Left += d.Col
	return r
}

// Inset shrinks r by n cells on every side (grows it for negative n).
func (r Rect) Inset(n int) Rect {
	return Rect{Top: r.Top + n, Left: r.Left + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
}

// Intersect returns the overlap of r and o; the result is empty when they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	top, left := max(r.Top, o.Top), max(r.Left, o.Left)
	bottom, right := min(r.Bottom(), o.Bottom()), min(r.Right(), o.Right())
	if bottom <= top || right <= left {
		return Rect{Top: top, Left: left}
	}
	return Rect{Top: top, Left: left, Width: right - left, Height: bottom - top}
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Empty() && !o.Empty() && !r.Intersect(o).Empty()
}

// SplitRows cuts r with a horizontal line after `at` rows. The first result
// holds rows [Top, Top+at), the second the rest. at is not clamped, so an
// out-of-range cut yields an empty or negative-height part.
func (r Rect) SplitRows(at int) (top, bottom Rect) {
	top, bottom = r, r
	top.Height = at
	bottom.Top = r.Top + at
	bottom.Height = r.Height - at
	return top, bottom
}

// SplitCols cuts r with a vertical line after `at` columns.
func (r Rect) SplitCols(at int) (left, right Rect) {
	left, right = r, r
	left.Width = at
	right.Left = r.Left + at
	right.Width = r.Width - at
	return left, right
}

// Interior yields every cell of r in row-major order.
func (r Rect) Interior() coord.Seq {
	return func(yield func(coord.Coord) bool) {
		if r.Empty() {
			return
		}
		for row := r.Top; row < r.Bottom(); row++ {
			for col := r.Left; col < r.Right(); col++ {
				if !yield(coord.New(row, col)) {
					return
				}
			}
		}
	}
}

// Border yields the perimeter cells of r in row-major order. For a rectangle
// one cell thin the border is the whole rectangle.
func (r Rect) Border() coord.Seq {
	return func(yield func(coord.Coord) bool) {
		if r.Empty() {
			return
		}
		last := r.Bottom() - 1
		for row := r.Top; row <= last; row++ {
			if row == r.Top || row == last {
				for col := r.Left; col < r.Right(); col++ {
					if !yield(coord.New(row, col)) {
						return
					}
				}
				continue
			}
			if !yield(coord.New(row, r.Left)) {
				return
			}
			if r.Width > 1 && !yield(coord.New(row, r.Right()-1)) {
				return
			}
		}
	}
}
