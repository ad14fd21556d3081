package field

import "strconv"

// Kind distinguishes mine cells from empty ones.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindMine
)

// Content is what a cell holds. Empty cells carry an adjacent mine count once
// they have been revealed.
type Content struct {
	kind    Kind
	count   uint8
	counted bool
}

// Empty returns empty content with no recorded count.
func Empty() Content { return Content{kind: KindEmpty} }

// EmptyWithCount returns empty content holding n adjacent mines.
func EmptyWithCount(n uint8) Content { return Content{kind: KindEmpty, count: n, counted: true} }

// Mine returns mine content.
func Mine() Content { return Content{kind: KindMine} }

// Kind reports the content kind.
func (c Content) Kind() Kind { return c.kind }

// IsMine reports whether the content is a mine.
func (c Content) IsMine() bool { return c.kind == KindMine }

// AdjacentMines returns the recorded neighbor count. ok is false for mines and
// for empty cells that have not been revealed yet.
func (c Content) AdjacentMines() (n uint8, ok bool) {
	if c.kind != KindEmpty || !c.counted {
		return 0, false
	}
	return c.count, true
}

func (c Content) String() string {
	if c.kind == KindMine {
		return "Mine"
	}
	if !c.counted {
		return "Empty(None)"
	}
	return "Empty(" + strconv.Itoa(int(c.count)) + ")"
}

// Visibility is what the player currently sees of a cell.
type Visibility uint8

const (
	Hidden Visibility = iota
	Flagged
	Revealed
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "visibility(" + strconv.Itoa(int(v)) + ")"
	}
}

// Cell pairs content with visibility.
type Cell struct {
	Content    Content
	Visibility Visibility
}

// IsMine reports whether the cell holds a mine.
func (c Cell) IsMine() bool { return c.Content.IsMine() }
