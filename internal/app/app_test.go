package app

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"minefield/internal/core"
	"minefield/internal/field"
	"minefield/internal/session"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("test", nil, map[string]string{})
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *NewConfig() {
		t.Fatalf("Load() = %+v, want defaults %+v", *cfg, *NewConfig())
	}
}

func TestLoadLayering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "field.yaml")
	data := "width: 9\nheight: 9\nmines: 10\ncell_size: 24\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	environment := map[string]string{
		"MINEFIELD_MINES":       "12",
		"MINEFIELD_EXIT_ON_WIN": "true",
		"MINEFIELD_CELL_SIZE":   "30",
	}
	cfg, err := Load("test", []string{"-config", path, "-cell", "32"}, environment)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 9 || cfg.Height != 9 {
		t.Fatalf("file size not applied: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("file log level not applied: %q", cfg.LogLevel)
	}
	if cfg.Mines != 12 || !cfg.ExitOnWin {
		t.Fatalf("env not applied over file: mines=%d exitOnWin=%v", cfg.Mines, cfg.ExitOnWin)
	}
	if cfg.CellSize != 32 {
		t.Fatalf("flag did not win: cell=%d", cfg.CellSize)
	}
	if cfg.RefreshTPS != NewConfig().RefreshTPS {
		t.Fatalf("unset value lost its default: refresh=%d", cfg.RefreshTPS)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := [][]string{
		{"-w", "0"},
		{"-w", "3", "-h", "3", "-mines", "9"},
		{"-mines", "-1"},
		{"-cell", "0"},
		{"-refresh", "0"},
		{"-log", "loud"},
		{"-config", filepath.Join(t.TempDir(), "missing.yaml")},
	}
	for _, args := range cases {
		if _, err := Load("test", args, map[string]string{}); err == nil {
			t.Fatalf("Load(%v) accepted invalid settings", args)
		}
	}
	if _, err := Load("test", nil, map[string]string{"MINEFIELD_WIDTH": "wide"}); err == nil {
		t.Fatal("Load accepted a non-numeric env width")
	}
}

func TestLoadHelp(t *testing.T) {
	_, err := Load("test", []string{"-help"}, map[string]string{})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Load(-help) = %v, want flag.ErrHelp", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output %q", out)
	}
	if _, err := NewLogger(&buf, "nope"); err == nil {
		t.Fatal("NewLogger accepted an unknown level")
	}
}

func TestCellAt(t *testing.T) {
	size := core.Size{W: 30, H: 16}
	cases := []struct {
		px, py int
		want   core.Coord
		ok     bool
	}{
		{0, 0, core.Pt(0, 0), true},
		{39, 39, core.Pt(0, 0), true},
		{40, 0, core.Pt(1, 0), true},
		{1199, 639, core.Pt(29, 15), true},
		{1200, 0, core.Coord{}, false},
		{0, 640, core.Coord{}, false},
		{-5, 10, core.Coord{}, false},
		{10, -1, core.Coord{}, false},
	}
	for _, tc := range cases {
		got, ok := CellAt(tc.px, tc.py, 40, size)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("CellAt(%d,%d) = %v,%v, want %v,%v", tc.px, tc.py, got, ok, tc.want, tc.ok)
		}
	}
	if _, ok := CellAt(10, 10, 0, size); ok {
		t.Fatal("CellAt accepted a zero cell size")
	}
}

func newTerminal(t *testing.T, w, h int, mines ...core.Coord) (*Terminal, *session.Session, *bytes.Buffer) {
	t.Helper()
	g, err := field.FromMines(w, h, mines, core.NewRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	sess := session.New(g, session.WithLogger(l))
	var out bytes.Buffer
	return NewTerminal(sess, len(mines), &out), sess, &out
}

func TestTerminalPlaysToWin(t *testing.T) {
	term, sess, out := newTerminal(t, 3, 3, core.Pt(2, 2))
	script := "r 0 0\nf 2 2\nq\nr 1 1\n"
	if err := term.Run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	if sess.Outcome() != session.Won {
		t.Fatalf("outcome %v, want won", sess.Outcome())
	}
	if !strings.Contains(out.String(), "Congrats") {
		t.Fatalf("win not announced:\n%s", out.String())
	}
}

func TestTerminalLossAndReset(t *testing.T) {
	term, sess, out := newTerminal(t, 3, 3, core.Pt(1, 1))
	if _, err := term.Exec("r 1 1"); err != nil {
		t.Fatal(err)
	}
	if sess.Outcome() != session.Lost {
		t.Fatalf("outcome %v, want lost", sess.Outcome())
	}
	if !strings.Contains(out.String(), "Game over") {
		t.Fatalf("loss not announced:\n%s", out.String())
	}
	if _, err := term.Exec("n"); err != nil {
		t.Fatal(err)
	}
	if sess.Outcome() != session.Playing || sess.Flags().Remaining != 1 {
		t.Fatalf("reset left outcome %v budget %+v", sess.Outcome(), sess.Flags())
	}
}

func TestTerminalReportsExhaustedFlags(t *testing.T) {
	term, sess, out := newTerminal(t, 3, 3, core.Pt(1, 1))
	for _, line := range []string{"f 0 0", "f 2 2"} {
		if _, err := term.Exec(line); err != nil {
			t.Fatal(err)
		}
	}
	if !strings.Contains(out.String(), "remaining flags") {
		t.Fatalf("exhausted budget not reported:\n%s", out.String())
	}
	if sess.Flags().Remaining != 0 {
		t.Fatalf("remaining %d, want 0", sess.Flags().Remaining)
	}
}

func TestTerminalRejectsBadInput(t *testing.T) {
	term, _, _ := newTerminal(t, 3, 3, core.Pt(1, 1))
	for _, line := range []string{"r 1", "r a 1", "f 1 b", "jump"} {
		if _, err := term.Exec(line); err == nil {
			t.Fatalf("Exec(%q) accepted bad input", line)
		}
	}
	quit, err := term.Exec("  ")
	if quit || err != nil {
		t.Fatal("blank line should be ignored")
	}
	if quit, _ := term.Exec("q"); !quit {
		t.Fatal("q should stop the driver")
	}
}
