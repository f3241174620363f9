package border

import (
	"github.com/tamboui/tamboui/buffer"
	"github.com/tamboui/tamboui/style"
)

// Set is a family of border glyphs used to outline one rectangle
type Set struct {
	TopLeft     string
	Top         string
	TopRight    string
	Left        string
	Right       string
	BottomLeft  string
	Bottom      string
	BottomRight string
}

// Predefined glyph sets
var (
	PlainSet = Set{
		TopLeft: "┌", Top: "─", TopRight: "┐",
		Left: "│", Right: "│",
		BottomLeft: "└", Bottom: "─", BottomRight: "┘",
	}
	RoundedSet = Set{
		TopLeft: "╭", Top: "─", TopRight: "╮",
		Left: "│", Right: "│",
		BottomLeft: "╰", Bottom: "─", BottomRight: "╯",
	}
	ThickSet = Set{
		TopLeft: "┏", Top: "━", TopRight: "┓",
		Left: "┃", Right: "┃",
		BottomLeft: "┗", Bottom: "━", BottomRight: "┛",
	}
	DoubleSet = Set{
		TopLeft: "╔", Top: "═", TopRight: "╗",
		Left: "║", Right: "║",
		BottomLeft: "╚", Bottom: "═", BottomRight: "╝",
	}
)

// put writes glyph at (x, y), merging with whatever border glyph is
// already there. This is the merge-before-set contract: the buffer stays
// a dumb grid, the border layer owns the merge policy.
func put(buf *buffer.Buffer, x, y int, glyph string, st style.Style, strategy MergeStrategy) {
	if !buf.Area().Contains(x, y) {
		return
	}
	merged := Merge(buf.Get(x, y).Symbol, glyph, strategy)
	buf.Set(x, y, buffer.NewCell(merged, st))
}

// Box outlines area on buf with the supplied glyph set, joining with any
// borders already painted there according to strategy. Rectangles
// smaller than 2x2 have no interior and are skipped.
func Box(buf *buffer.Buffer, area buffer.Rect, set Set, st style.Style, strategy MergeStrategy) {
	if area.Width < 2 || area.Height < 2 {
		return
	}

	put(buf, area.X, area.Y, set.TopLeft, st, strategy)
	put(buf, area.Right()-1, area.Y, set.TopRight, st, strategy)
	put(buf, area.X, area.Bottom()-1, set.BottomLeft, st, strategy)
	put(buf, area.Right()-1, area.Bottom()-1, set.BottomRight, st, strategy)

	for x := area.X + 1; x < area.Right()-1; x++ {
		put(buf, x, area.Y, set.Top, st, strategy)
		put(buf, x, area.Bottom()-1, set.Bottom, st, strategy)
	}
	for y := area.Y + 1; y < area.Bottom()-1; y++ {
		put(buf, area.X, y, set.Left, st, strategy)
		put(buf, area.Right()-1, y, set.Right, st, strategy)
	}
}

// HLine draws a horizontal run of glyph across area's row y, merging
// with existing borders
func HLine(buf *buffer.Buffer, area buffer.Rect, y int, glyph string, st style.Style, strategy MergeStrategy) {
	if y < area.Y || y >= area.Bottom() {
		return
	}
	for x := area.X; x < area.Right(); x++ {
		put(buf, x, y, glyph, st, strategy)
	}
}

// VLine draws a vertical run of glyph down area's column x, merging
// with existing borders
func VLine(buf *buffer.Buffer, area buffer.Rect, x int, glyph string, st style.Style, strategy MergeStrategy) {
	if x < area.X || x >= area.Right() {
		return
	}
	for y := area.Y; y < area.Bottom(); y++ {
		put(buf, x, y, glyph, st, strategy)
	}
}
