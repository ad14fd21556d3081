package core

// Size describes the dimensions of a minefield.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Contains reports whether c lies inside [0,W)x[0,H).
func (s Size) Contains(c Coord) bool {
	return c.X >= 0 && c.X < s.W && c.Y >= 0 && c.Y < s.H
}

// Index returns the row-major slice index for c. The caller checks bounds.
func (s Size) Index(c Coord) int { return c.Y*s.W + c.X }

// Coord addresses a single cell. It may be out of bounds when used as a
// query key.
type Coord struct {
	X int
	Y int
}

// Pt is shorthand for Coord{X: x, Y: y}.
func Pt(x, y int) Coord { return Coord{X: x, Y: y} }

// Add offsets the coordinate.
func (c Coord) Add(dx, dy int) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

// Neighbors8 returns the 3x3 block around c minus c itself. Coordinates are
// not bounds checked.
func (c Coord) Neighbors8() [8]Coord {
	var out [8]Coord
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = c.Add(dx, dy)
			i++
		}
	}
	return out
}

// Neighbors4 returns the orthogonal neighbors of c in left, right, up, down
// order. Coordinates are not bounds checked.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{c.Add(-1, 0), c.Add(1, 0), c.Add(0, -1), c.Add(0, 1)}
}
