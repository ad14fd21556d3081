//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"minefield/internal/core"
	"minefield/internal/render"
	"minefield/internal/session"
	"minefield/internal/ui"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	cfg     Config
	log     logrus.FieldLogger
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	refresh *core.FixedStep

	dirty bool
}

// New constructs a Game for the provided session.
func New(sess *session.Session, cfg Config, log logrus.FieldLogger) *Game {
	size := sess.Grid().Size()
	return &Game{
		sess:    sess,
		cfg:     cfg,
		log:     log,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(cfg.CellSize),
		hud:     ui.NewHUD(sess, cfg.HUDWidth),
		refresh: core.NewFixedStep(cfg.RefreshTPS),
		dirty:   true,
	}
}

// Reset starts a new game with the configured mine count.
func (g *Game) Reset() {
	if err := g.sess.Reset(g.cfg.Mines); err != nil {
		g.log.WithError(err).Error("reset failed")
		return
	}
	g.dirty = true
}

// Update handles per-frame input and applies it to the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Reset()
	}
	if g.hud.Update(g.boardWidth()) {
		g.Reset()
	}

	mx, my := ebiten.CursorPosition()
	if c, ok := CellAt(mx, my, g.cfg.CellSize, g.sess.Grid().Size()); ok {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.sess.Reveal(c)
			g.sess.CheckWin()
			g.dirty = true
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			// An exhausted budget is logged by the session.
			_ = g.sess.ToggleFlag(c)
			g.sess.CheckWin()
			g.dirty = true
		}
	}

	if g.cfg.ExitOnWin && g.sess.Outcome() == session.Won {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the board, count labels and status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty || g.refresh.ShouldStep() {
		g.painter.Update(g.sess.Grid(), g.sess.Outcome())
		g.dirty = false
	}
	g.painter.Draw(screen, g.cfg.CellSize)
	g.overlay.Draw(screen, g.sess.Grid())
	g.hud.Draw(screen, g.boardWidth(), g.boardHeight())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.boardWidth() + g.cfg.HUDWidth, g.boardHeight()
}

func (g *Game) boardWidth() int { return g.sess.Grid().Size().W * g.cfg.CellSize }

func (g *Game) boardHeight() int { return g.sess.Grid().Size().H * g.cfg.CellSize }
