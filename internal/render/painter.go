//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"minefield/internal/field"
	"minefield/internal/session"
)

var gridLineColor = color.RGBA{R: 96, G: 96, B: 96, A: 255}

// GridPainter keeps one pixel per cell and draws it scaled to the cell size.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	codes []uint8
	buf   []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:     w,
		h:     h,
		img:   ebiten.NewImage(w, h),
		codes: make([]uint8, w*h),
		buf:   make([]byte, 4*w*h),
	}
}

// Update re-encodes the view into the painter image.
func (gp *GridPainter) Update(view field.View, outcome session.Outcome) {
	if view.Size().Cells() != gp.w*gp.h {
		return
	}
	Encode(gp.codes, view, outcome)
	FillRGBA(gp.buf, gp.codes, Palette())
	gp.img.WritePixels(gp.buf)
}

// Draw paints the last encoded state onto dst with cellSize pixels per cell
// and grid lines between cells.
func (gp *GridPainter) Draw(dst *ebiten.Image, cellSize int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)

	cs := float32(cellSize)
	width, height := float32(gp.w)*cs, float32(gp.h)*cs
	for x := 0; x <= gp.w; x++ {
		px := float32(x) * cs
		vector.StrokeLine(dst, px, 0, px, height, 1, gridLineColor, false)
	}
	for y := 0; y <= gp.h; y++ {
		py := float32(y) * cs
		vector.StrokeLine(dst, 0, py, width, py, 1, gridLineColor, false)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
