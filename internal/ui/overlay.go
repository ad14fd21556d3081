//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"minefield/internal/core"
	"minefield/internal/field"
)

var countColor = color.RGBA{A: 255}

// Overlay draws adjacent mine counts on top of revealed cells.
type Overlay struct {
	cellSize int
	labels   [9]string
	offsetX  [9]int
}

// NewOverlay constructs an overlay for cells of cellSize pixels.
func NewOverlay(cellSize int) *Overlay {
	if cellSize <= 0 {
		cellSize = 1
	}
	o := &Overlay{cellSize: cellSize}
	face := basicfont.Face7x13
	for n := range o.labels {
		o.labels[n] = strconv.Itoa(n)
		o.offsetX[n] = (cellSize - text.BoundString(face, o.labels[n]).Dx()) / 2
	}
	return o
}

// Draw labels every revealed cell with a non-zero count.
func (o *Overlay) Draw(screen *ebiten.Image, view field.View) {
	face := basicfont.Face7x13
	baseline := (o.cellSize + face.Metrics().Ascent.Ceil()) / 2
	view.Each(func(c core.Coord, cell field.Cell) {
		if cell.Visibility != field.Revealed {
			return
		}
		n, ok := cell.Content.AdjacentMines()
		if !ok || n == 0 || int(n) >= len(o.labels) {
			return
		}
		x := c.X*o.cellSize + o.offsetX[n]
		y := c.Y*o.cellSize + baseline
		text.Draw(screen, o.labels[n], face, x, y, countColor)
	})
}
