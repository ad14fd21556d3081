// Package render turns a minefield view into pixels or text.
package render

import (
	"image/color"

	"minefield/internal/core"
	"minefield/internal/field"
	"minefield/internal/session"
)

// Display codes index into Palette.
const (
	CodeHidden uint8 = iota
	CodeFlagged
	CodeRevealed
	CodeMineFlagged
	CodeMineExposed
	CodeMineMissed
)

var palette = []color.RGBA{
	CodeHidden:      {R: 198, G: 198, B: 198, A: 255},
	CodeFlagged:     {R: 113, G: 0, B: 113, A: 255},
	CodeRevealed:    {R: 142, G: 142, B: 142, A: 255},
	CodeMineFlagged: {R: 28, G: 142, B: 28, A: 255},
	CodeMineExposed: {R: 255, G: 0, B: 0, A: 255},
	CodeMineMissed:  {R: 0, G: 0, B: 0, A: 255},
}

// Palette returns the colors indexed by display code.
func Palette() []color.RGBA { return palette }

// DisplayCode picks the display code for a cell. Mines are only told apart
// from safe cells once the game has ended.
func DisplayCode(cell field.Cell, outcome session.Outcome) uint8 {
	switch cell.Visibility {
	case field.Revealed:
		if cell.IsMine() {
			return CodeMineExposed
		}
		return CodeRevealed
	case field.Flagged:
		if cell.IsMine() && outcome.Terminal() {
			return CodeMineFlagged
		}
		return CodeFlagged
	default:
		if cell.IsMine() && outcome == session.Lost {
			return CodeMineMissed
		}
		return CodeHidden
	}
}

// Encode writes one display code per cell into dst in row-major order. dst
// must hold at least Size().Cells() entries.
func Encode(dst []uint8, view field.View, outcome session.Outcome) {
	w := view.Size().W
	view.Each(func(c core.Coord, cell field.Cell) {
		dst[c.Y*w+c.X] = DisplayCode(cell, outcome)
	})
}
