// Package session applies player actions to a minefield and tracks the game
// outcome and flag budget.
//
// A Session is not safe for concurrent use. Drivers call its methods from a
// single loop; each call, including a full flood fill, completes before
// returning.
package session

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"minefield/internal/core"
	"minefield/internal/field"
)

// ErrNoFlags is returned by ToggleFlag when every flag is already placed.
var ErrNoFlags = errors.New("no flags available")

// Outcome is the session's game status.
type Outcome uint8

const (
	Playing Outcome = iota
	Lost
	Won
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool { return o == Lost || o == Won }

// FlagBudget tracks how many flags the player may still place.
type FlagBudget struct {
	Remaining int
	Initial   int
}

// Session owns the outcome and flag budget and mutates the injected grid.
type Session struct {
	grid    *field.Grid
	outcome Outcome
	flags   FlagBudget
	log     logrus.FieldLogger

	// pending is reused across reveals as the flood fill work list.
	pending []core.Coord
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session events to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New starts a session on grid with one flag per mine.
func New(grid *field.Grid, opts ...Option) *Session {
	s := &Session{
		grid:    grid,
		outcome: Playing,
		flags:   FlagBudget{Remaining: grid.MineCount(), Initial: grid.MineCount()},
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Outcome returns the current game status.
func (s *Session) Outcome() Outcome { return s.outcome }

// Flags returns the flag budget.
func (s *Session) Flags() FlagBudget { return s.flags }

// Grid returns read-only access to the minefield.
func (s *Session) Grid() field.View { return s.grid }

// Reveal uncovers the cell at c and returns how many cells became revealed.
// Hitting a mine loses the game; an empty cell with no adjacent mines opens
// its orthogonally connected region.
func (s *Session) Reveal(c core.Coord) int {
	if s.outcome != Playing {
		return 0
	}
	cell, ok := s.grid.At(c)
	if !ok || cell.Visibility != field.Hidden {
		return 0
	}
	if cell.IsMine() {
		s.outcome = Lost
		s.log.WithFields(logrus.Fields{"x": c.X, "y": c.Y}).Info("mine hit, game over")
		return 0
	}
	revealed := s.floodFill(c)
	s.log.WithFields(logrus.Fields{
		"x":        c.X,
		"y":        c.Y,
		"revealed": revealed,
	}).Debug("cells revealed")
	return revealed
}

// floodFill reveals start and expands through zero-count cells. Neighbor
// counts use all 8 surrounding cells while expansion follows only the 4
// orthogonal ones. Cells are marked revealed before they are queued so each
// is handled once.
func (s *Session) floodFill(start core.Coord) int {
	revealed := 0
	s.pending = s.pending[:0]
	if s.open(start) {
		s.pending = append(s.pending, start)
	}
	revealed++

	for len(s.pending) > 0 {
		last := len(s.pending) - 1
		c := s.pending[last]
		s.pending = s.pending[:last]

		for _, n := range c.Neighbors4() {
			cell, ok := s.grid.At(n)
			if !ok || cell.Visibility != field.Hidden || cell.IsMine() {
				continue
			}
			if s.open(n) {
				s.pending = append(s.pending, n)
			}
			revealed++
		}
	}
	return revealed
}

// open reveals a hidden empty cell, records its count and reports whether
// the count is zero.
func (s *Session) open(c core.Coord) bool {
	n := s.grid.CountMineNeighbors(c)
	cell, _ := s.grid.Mutate(c)
	cell.Content = field.EmptyWithCount(n)
	cell.Visibility = field.Revealed
	return n == 0
}

// ToggleFlag flags a hidden cell or unflags a flagged one. It returns
// ErrNoFlags when a flag is requested with none left; every other rejected
// action is a silent no-op.
func (s *Session) ToggleFlag(c core.Coord) error {
	if s.outcome != Playing {
		return nil
	}
	cell, ok := s.grid.Mutate(c)
	if !ok {
		return nil
	}
	switch cell.Visibility {
	case field.Revealed:
		return nil
	case field.Flagged:
		cell.Visibility = field.Hidden
		s.flags.Remaining++
	default:
		if s.flags.Remaining == 0 {
			s.log.WithFields(logrus.Fields{"x": c.X, "y": c.Y}).Warn("no flags remaining, reclaim one from the field")
			return ErrNoFlags
		}
		cell.Visibility = field.Flagged
		s.flags.Remaining--
	}
	s.log.WithFields(logrus.Fields{
		"x":          c.X,
		"y":          c.Y,
		"visibility": cell.Visibility,
		"remaining":  s.flags.Remaining,
	}).Info("flags remaining")
	return nil
}

// CheckWin marks the game won when every mine is flagged and reports whether
// the game is won. Safe cells do not need to be revealed, and a field without
// mines is won immediately.
func (s *Session) CheckWin() bool {
	if s.outcome != Playing {
		return s.outcome == Won
	}
	won := true
	s.grid.Each(func(_ core.Coord, cell field.Cell) {
		if cell.IsMine() && cell.Visibility != field.Flagged {
			won = false
		}
	})
	if !won {
		return false
	}
	s.outcome = Won
	s.log.WithField("mines", s.grid.MineCount()).Info("all mines flagged, game won")
	return true
}

// Reset re-rolls the grid with mines mines and starts a new game. The flag
// budget refills to its initial value; it is not recomputed from mines.
func (s *Session) Reset(mines int) error {
	if err := s.grid.Reset(mines); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	s.outcome = Playing
	s.flags.Remaining = s.flags.Initial
	s.log.WithFields(logrus.Fields{
		"width":  s.grid.Width(),
		"height": s.grid.Height(),
		"mines":  mines,
	}).Info("new game")
	return nil
}
