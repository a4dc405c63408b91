package coord

import "fmt"

// Unit offsets. North is towards row 0, East towards larger columns.
var (
	North     = Coord{Row: -1, Col: 0}
	NorthEast = Coord{Row: -1, Col: 1}
	East      = Coord{Row: 0, Col: 1}
	SouthEast = Coord{Row: 1, Col: 1}
	South     = Coord{Row: 1, Col: 0}
	SouthWest = Coord{Row: 1, Col: -1}
	West      = Coord{Row: 0, Col: -1}
	NorthWest = Coord{Row: -1, Col: -1}
)

var (
	orthogonal = [4]Coord{North, East, South, West}
	diagonal   = [4]Coord{NorthEast, SouthEast, SouthWest, NorthWest}
	moore      = [8]Coord{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
)

// Orthogonal returns a fresh slice of the four orthogonal offsets N, E, S, W.
func Orthogonal() []Coord { return append([]Coord(nil), orthogonal[:]...) }

// Diagonal returns a fresh slice of the four diagonal offsets NE, SE, SW, NW.
func Diagonal() []Coord { return append([]Coord(nil), diagonal[:]...) }

// Moore returns a fresh slice of all eight offsets, clockwise from North.
func Moore() []Coord { return append([]Coord(nil), moore[:]...) }

// Connectivity selects neighbor adjacency: orthogonal only (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Valid reports whether c is Conn4 or Conn8.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// Offsets returns the neighbor offsets for c. Unknown values yield nil.
func (c Connectivity) Offsets() []Coord {
	switch c {
	case Conn4:
		return Orthogonal()
	case Conn8:
		return Moore()
	default:
		return nil
	}
}

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "Conn4"
	case Conn8:
		return "Conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Anchor yields center+o for every offset o, in offset order.
// The offsets slice is read lazily; callers must not mutate it while ranging.
func Anchor(center Coord, offsets []Coord) Seq {
	return func(yield func(Coord) bool) {
		for _, o := range offsets {
			if !yield(center.Add(o)) {
				return
			}
		}
	}
}
