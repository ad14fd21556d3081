package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"minefield/internal/core"
	"minefield/internal/render"
	"minefield/internal/session"
)

const terminalHelp = `commands:
  r X Y   reveal the cell at column X, row Y
  f X Y   flag or unflag the cell at column X, row Y
  n       start a new game
  p       print the board
  h       show this help
  q       quit
`

// Terminal drives a session from line-oriented text input.
type Terminal struct {
	sess  *session.Session
	mines int
	out   io.Writer
}

// NewTerminal returns a driver that resets sess with mines mines on "n".
func NewTerminal(sess *session.Session, mines int, out io.Writer) *Terminal {
	return &Terminal{sess: sess, mines: mines, out: out}
}

// Run reads commands from in until "q" or end of input.
func (t *Terminal) Run(in io.Reader) error {
	fmt.Fprint(t.out, terminalHelp)
	t.printBoard()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := t.Exec(scanner.Text())
		if err != nil {
			fmt.Fprintln(t.out, err)
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// Exec applies one command line. It reports whether the driver should stop;
// the returned error describes input that could not be applied.
func (t *Terminal) Exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	switch strings.ToLower(fields[0]) {
	case "q", "quit", "exit":
		return true, nil
	case "h", "help", "?":
		fmt.Fprint(t.out, terminalHelp)
		return false, nil
	case "p", "print":
		t.printBoard()
		return false, nil
	case "n", "new", "reset":
		if err := t.sess.Reset(t.mines); err != nil {
			return false, err
		}
	case "r", "reveal":
		c, err := parseCoord(fields[1:])
		if err != nil {
			return false, err
		}
		t.sess.Reveal(c)
		t.sess.CheckWin()
	case "f", "flag":
		c, err := parseCoord(fields[1:])
		if err != nil {
			return false, err
		}
		if err := t.sess.ToggleFlag(c); errors.Is(err, session.ErrNoFlags) {
			fmt.Fprintln(t.out, "You do not have any remaining flags! Reclaim the ones on the field!")
		}
		t.sess.CheckWin()
	default:
		return false, fmt.Errorf("unknown command %q, type h for help", fields[0])
	}
	t.printBoard()
	return false, nil
}

func (t *Terminal) printBoard() {
	outcome := t.sess.Outcome()
	fmt.Fprint(t.out, render.Text(t.sess.Grid(), outcome))
	flags := t.sess.Flags()
	fmt.Fprintf(t.out, "flags remaining: %d/%d\n", flags.Remaining, flags.Initial)
	switch outcome {
	case session.Lost:
		fmt.Fprintln(t.out, "Game over. Type n for a new game.")
	case session.Won:
		fmt.Fprintln(t.out, "Congrats, you won! Type n for a new game.")
	}
}

func parseCoord(args []string) (core.Coord, error) {
	if len(args) != 2 {
		return core.Coord{}, errors.New("expected two coordinates: X Y")
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return core.Coord{}, fmt.Errorf("bad column %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return core.Coord{}, fmt.Errorf("bad row %q", args[1])
	}
	return core.Pt(x, y), nil
}
