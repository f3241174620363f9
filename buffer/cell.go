package buffer

import (
	"github.com/mattn/go-runewidth"

	"github.com/tamboui/tamboui/style"
)

// Cell is one terminal column's rendered content: a grapheme cluster, its
// style, and a flag marking continuation columns of wide graphemes.
// Cells are immutable values; the buffer replaces them wholesale.
type Cell struct {
	Symbol       string
	Style        style.Style
	Continuation bool
}

// Blank is the empty cell: a single space with the zero style
var Blank = Cell{Symbol: " "}

// NewCell creates a cell holding one grapheme cluster
func NewCell(symbol string, st style.Style) Cell {
	return Cell{Symbol: symbol, Style: st}
}

// continuation returns the placeholder cell written after a wide grapheme.
// It carries the lead cell's style so style-only diffs stay consistent.
func continuation(st style.Style) Cell {
	return Cell{Style: st, Continuation: true}
}

// Width returns the number of terminal columns the cell spans.
// Continuation cells report zero; they own no column content.
func (c Cell) Width() int {
	if c.Continuation {
		return 0
	}
	return runewidth.StringWidth(c.Symbol)
}

// appendSymbol returns a copy with extra appended to the grapheme.
// Used for zero-width combining input that attaches to an earlier column.
func (c Cell) appendSymbol(extra string) Cell {
	c.Symbol += extra
	return c
}
