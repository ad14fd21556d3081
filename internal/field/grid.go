// Package field holds the minefield: cell storage, mine placement and
// bounds-safe neighbor queries.
package field

import (
	"errors"
	"fmt"

	"minefield/internal/core"
)

var (
	// ErrInvalidSize is returned when either dimension is not positive.
	ErrInvalidSize = errors.New("field dimensions must be positive")
	// ErrMineCount is returned when the mine count is negative or leaves no
	// safe cell.
	ErrMineCount = errors.New("mine count must be in [0, width*height)")
)

// Rand is the random source used for mine placement. *core.RNG and
// *rand.Rand both satisfy it.
type Rand interface {
	IntN(n int) int
}

// View is read-only access to a grid, handed to presentation code.
type View interface {
	Size() core.Size
	MineCount() int
	At(c core.Coord) (Cell, bool)
	Cells() []Cell
	Mines() []core.Coord
	Each(fn func(c core.Coord, cell Cell))
}

// Grid stores cells in row-major order.
type Grid struct {
	size  core.Size
	mines int
	cells []Cell
	rng   Rand
}

var _ View = (*Grid)(nil)

// New allocates a w*h grid and places mines at random. A nil rng is replaced
// by a crypto-seeded one.
func New(w, h, mines int, rng Rand) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", w, h, ErrInvalidSize)
	}
	if err := checkMineCount(w*h, mines); err != nil {
		return nil, fmt.Errorf("new grid %dx%d: %w", w, h, err)
	}
	if rng == nil {
		seed, err := core.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("new grid: %w", err)
		}
		rng = core.NewRNG(seed)
	}
	g := &Grid{
		size:  core.Size{W: w, H: h},
		cells: make([]Cell, w*h),
		rng:   rng,
	}
	g.populate(mines)
	return g, nil
}

// FromMines builds a grid with mines at fixed positions. Later resets
// re-randomize with rng.
func FromMines(w, h int, mines []core.Coord, rng Rand) (*Grid, error) {
	g, err := New(w, h, 0, rng)
	if err != nil {
		return nil, err
	}
	if err := checkMineCount(w*h, len(mines)); err != nil {
		return nil, fmt.Errorf("new grid %dx%d: %w", w, h, err)
	}
	for _, c := range mines {
		cell, ok := g.Mutate(c)
		if !ok {
			return nil, fmt.Errorf("mine at %v outside %dx%d grid", c, w, h)
		}
		if cell.IsMine() {
			return nil, fmt.Errorf("duplicate mine at %v", c)
		}
		cell.Content = Mine()
	}
	g.mines = len(mines)
	return g, nil
}

func checkMineCount(total, mines int) error {
	if mines < 0 || mines >= total {
		return fmt.Errorf("%d mines on %d cells: %w", mines, total, ErrMineCount)
	}
	return nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.size }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.size.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.size.H }

// MineCount returns the number of mines placed on the grid.
func (g *Grid) MineCount() int { return g.mines }

// InBounds reports whether c addresses a cell.
func (g *Grid) InBounds(c core.Coord) bool { return g.size.Contains(c) }

// At returns a copy of the cell at c, or false when c is out of range.
func (g *Grid) At(c core.Coord) (Cell, bool) {
	if !g.size.Contains(c) {
		return Cell{}, false
	}
	return g.cells[g.size.Index(c)], true
}

// Mutate grants write access to the cell at c, or false when c is out of range.
func (g *Grid) Mutate(c core.Coord) (*Cell, bool) {
	if !g.size.Contains(c) {
		return nil, false
	}
	return &g.cells[g.size.Index(c)], true
}

// SetContent replaces the content at c. Out of range is a no-op.
func (g *Grid) SetContent(c core.Coord, content Content) {
	if cell, ok := g.Mutate(c); ok {
		cell.Content = content
	}
}

// SetVisibility replaces the visibility at c. Out of range is a no-op.
func (g *Grid) SetVisibility(c core.Coord, v Visibility) {
	if cell, ok := g.Mutate(c); ok {
		cell.Visibility = v
	}
}

// CountMineNeighbors counts mines in the 3x3 block around c, skipping
// coordinates outside the grid. The center is never counted.
func (g *Grid) CountMineNeighbors(c core.Coord) uint8 {
	var sum uint8
	for _, n := range c.Neighbors8() {
		if !g.size.Contains(n) {
			continue
		}
		if g.cells[g.size.Index(n)].IsMine() {
			sum++
		}
	}
	return sum
}

// Cells returns a snapshot of every cell in row-major order.
func (g *Grid) Cells() []Cell {
	return append([]Cell(nil), g.cells...)
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c core.Coord, cell Cell)) {
	for i, cell := range g.cells {
		fn(core.Pt(i%g.size.W, i/g.size.W), cell)
	}
}

// Mines returns the coordinates of every mine in row-major order.
func (g *Grid) Mines() []core.Coord {
	out := make([]core.Coord, 0, g.mines)
	for i, cell := range g.cells {
		if cell.IsMine() {
			out = append(out, core.Pt(i%g.size.W, i/g.size.W))
		}
	}
	return out
}

// Reset clears every cell to hidden empty and places mines afresh. An invalid
// count leaves the grid untouched.
func (g *Grid) Reset(mines int) error {
	if err := checkMineCount(len(g.cells), mines); err != nil {
		return fmt.Errorf("reset grid: %w", err)
	}
	g.populate(mines)
	return nil
}

// populate uses rejection sampling. Expected cost is O(mines) on sparse
// fields but grows sharply as mines approaches the cell count.
func (g *Grid) populate(mines int) {
	for i := range g.cells {
		g.cells[i] = Cell{Content: Empty(), Visibility: Hidden}
	}
	placed := 0
	for placed < mines {
		x := g.rng.IntN(g.size.W)
		y := g.rng.IntN(g.size.H)
		cell := &g.cells[g.size.Index(core.Pt(x, y))]
		if cell.IsMine() {
			continue
		}
		cell.Content = Mine()
		placed++
	}
	g.mines = mines
}
