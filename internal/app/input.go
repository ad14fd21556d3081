package app

import "minefield/internal/core"

// CellAt maps a pointer position in board pixels to the cell under it.
func CellAt(px, py, cellSize int, size core.Size) (core.Coord, bool) {
	if cellSize <= 0 || px < 0 || py < 0 {
		return core.Coord{}, false
	}
	c := core.Pt(px/cellSize, py/cellSize)
	if !size.Contains(c) {
		return core.Coord{}, false
	}
	return c, true
}
