//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"minefield/internal/core"
	"minefield/internal/session"
)

const (
	panelPadding   = 12
	headerBaseline = 14
	lineSpacing    = 18
	groupSpacing   = 10
	buttonHeight   = 24
)

var (
	panelColor   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	lostColor    = color.RGBA{R: 230, G: 70, B: 70, A: 255}
	wonColor     = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	buttonColor  = color.RGBA{R: 48, G: 48, B: 60, A: 255}
	buttonBorder = color.RGBA{R: 110, G: 110, B: 130, A: 255}
)

var helpLines = []string{
	"Left click: reveal",
	"Right click: flag",
	"Space: new game",
	"Q / Esc: quit",
}

type statusProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the status panel to the right of the minefield.
type HUD struct {
	src        statusProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	panelOffsetX int
	resetRect    image.Rectangle
	pixel        *ebiten.Image
}

// NewHUD constructs a HUD reading from src with the given panel width.
func NewHUD(src statusProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes the cached snapshot and reports whether the new game
// button was clicked.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	return image.Pt(mx-h.panelOffsetX, my).In(h.resetRect)
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Minefield", face, panelPadding, y, headerColor)
	y += lineSpacing

	if p, ok := h.snapshot.Lookup(session.ParamOutcome); ok {
		y += groupSpacing
		text.Draw(h.panel, outcomeBanner(p.Value), face, panelPadding, y, outcomeColor(p.Value))
		y += lineSpacing
	}

	for _, group := range h.snapshot.Groups {
		y += groupSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += lineSpacing
		for _, param := range group.Params {
			if param.Key == session.ParamOutcome {
				continue
			}
			text.Draw(h.panel, param.Label, face, panelPadding, y, labelColor)
			bounds := text.BoundString(face, param.Value)
			text.Draw(h.panel, param.Value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
			y += lineSpacing
		}
	}

	y += groupSpacing
	h.resetRect = image.Rect(panelPadding, y, h.width-panelPadding, y+buttonHeight)
	h.drawButton(h.resetRect, "New game")
	y += buttonHeight + lineSpacing + groupSpacing

	for _, line := range helpLines {
		text.Draw(h.panel, line, face, panelPadding, y, labelColor)
		y += lineSpacing
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil || rect.Empty() {
		return
	}
	h.fillRect(rect, buttonBorder)
	h.fillRect(rect.Inset(1), buttonColor)
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()+bounds.Dy())/2
	text.Draw(h.panel, label, face, x, y, valueColor)
}

func (h *HUD) fillRect(rect image.Rectangle, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(clr)
	h.panel.DrawImage(h.pixel, op)
}

func outcomeBanner(outcome string) string {
	switch outcome {
	case session.Lost.String():
		return "Game over"
	case session.Won.String():
		return "You won!"
	default:
		return "Playing"
	}
}

func outcomeColor(outcome string) color.Color {
	switch outcome {
	case session.Lost.String():
		return lostColor
	case session.Won.String():
		return wonColor
	default:
		return valueColor
	}
}
