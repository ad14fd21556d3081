package render

import (
	"fmt"
	"strings"

	"minefield/internal/core"
	"minefield/internal/field"
	"minefield/internal/session"
)

// Glyphs used by Text.
const (
	GlyphHidden  = '#'
	GlyphFlag    = 'F'
	GlyphBlank   = '.'
	GlyphMine    = '*'
	GlyphUnknown = '?'
)

// Glyph returns the character drawn for a cell.
func Glyph(cell field.Cell, outcome session.Outcome) byte {
	switch cell.Visibility {
	case field.Flagged:
		return GlyphFlag
	case field.Revealed:
		if cell.IsMine() {
			return GlyphMine
		}
		n, ok := cell.Content.AdjacentMines()
		if !ok {
			return GlyphUnknown
		}
		if n == 0 {
			return GlyphBlank
		}
		return '0' + n
	default:
		if cell.IsMine() && outcome == session.Lost {
			return GlyphMine
		}
		return GlyphHidden
	}
}

// Text draws the field as a character grid with column and row labels.
// Column labels show x modulo 10.
func Text(view field.View, outcome session.Outcome) string {
	size := view.Size()
	var b strings.Builder

	b.WriteString("    ")
	for x := 0; x < size.W; x++ {
		if x > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('0' + byte(x%10))
	}
	b.WriteByte('\n')

	for y := 0; y < size.H; y++ {
		fmt.Fprintf(&b, "%3d ", y)
		for x := 0; x < size.W; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			cell, _ := view.At(core.Pt(x, y))
			b.WriteByte(Glyph(cell, outcome))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
