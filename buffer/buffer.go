// Package buffer provides the styled cell grid that frames are composed
// into, and the diff that reduces two same-shaped frames to the minimal
// ordered list of cell updates a backend must apply.
package buffer

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/tamboui/tamboui/style"
)

// Buffer is a dense row-major grid of cells covering a rectangular area.
// Coordinates passed to Get/Set are absolute (inside the area), not
// relative to the buffer origin.
type Buffer struct {
	area  Rect
	cells []Cell
}

// Empty allocates a buffer of blank cells sized to area
func Empty(area Rect) *Buffer {
	return Filled(area, Blank)
}

// Filled allocates a buffer with every cell set to fill
func Filled(area Rect, fill Cell) *Buffer {
	cells := make([]Cell, area.Area())
	for i := range cells {
		cells[i] = fill
	}
	return &Buffer{area: area, cells: cells}
}

// Area returns the rectangle the buffer addresses
func (b *Buffer) Area() Rect {
	return b.area
}

// index converts absolute coordinates to the backing slice index.
// Out-of-area coordinates are a bug in the calling layout code and
// panic rather than clamp.
func (b *Buffer) index(x, y int) int {
	if !b.area.Contains(x, y) {
		panic(fmt.Sprintf("buffer: coordinate (%d,%d) outside area %s", x, y, b.area))
	}
	return (y-b.area.Y)*b.area.Width + (x - b.area.X)
}

// Get returns the cell at (x, y). Panics if outside the area.
func (b *Buffer) Get(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

// Set overwrites the cell at (x, y). A multi-column grapheme additionally
// overwrites the following columns with continuation cells; columns past
// the right edge are clipped, not wrapped. Any wide grapheme partially
// covered by the write is blanked in full, so a lead never survives
// without its continuations and vice versa. Panics if (x, y) itself is
// outside the area.
func (b *Buffer) Set(x, y int, cell Cell) {
	idx := b.index(x, y)
	w := cell.Width()

	end := min(x+w, b.area.Right())
	if end <= x {
		end = x + 1
	}
	for col := x; col < end; col++ {
		b.clearSpan(col, y)
	}

	b.cells[idx] = cell
	for i := 1; i < w && x+i < b.area.Right(); i++ {
		b.cells[idx+i] = continuation(cell.Style)
	}
}

// clearSpan blanks every column of the wide grapheme occupying (x, y),
// keeping its style, so overwriting part of the span leaves no dangling
// lead or continuation cell. A no-op for single-column cells.
func (b *Buffer) clearSpan(x, y int) {
	lead := x
	for lead > b.area.X && b.Get(lead, y).Continuation {
		lead--
	}
	c := b.Get(lead, y)
	w := c.Width()
	if lead == x && w <= 1 {
		return
	}
	blank := Cell{Symbol: " ", Style: c.Style}
	for i := 0; i < w && lead+i < b.area.Right(); i++ {
		b.cells[b.index(lead+i, y)] = blank
	}
}

// SetString writes each grapheme cluster of text left to right starting
// at (x, y), advancing by display width and clipping at the row edge.
// Zero-width clusters (combining marks, controls) attach to the cell
// written before them instead of taking a column. Returns the first
// column after the written text.
func (b *Buffer) SetString(x, y int, text string, st style.Style) int {
	return b.setStringClipped(b.area, x, y, text, st)
}

// setStringClipped is SetString restricted to clip, which must lie
// inside the buffer's area. Shared with Region.Text.
func (b *Buffer) setStringClipped(clip Rect, x, y int, text string, st style.Style) int {
	if y < clip.Y || y >= clip.Bottom() {
		return x
	}
	col := x
	last := -1 // index of the last lead cell written

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			// Attach to the preceding column rather than occupying one
			if last >= 0 {
				b.cells[last] = b.cells[last].appendSymbol(cluster)
			}
			continue
		}
		if col < clip.X {
			col += w
			continue
		}
		if col+w > clip.Right() {
			break
		}
		b.Set(col, y, NewCell(cluster, st))
		last = b.index(col, y)
		col += w
	}
	return col
}

// SetStyle patches (not replaces) the style of every cell in area,
// clipped to the buffer's own area
func (b *Buffer) SetStyle(area Rect, st style.Style) {
	clipped := b.area.Intersect(area)
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			idx := b.index(x, y)
			b.cells[idx].Style = b.cells[idx].Style.Patch(st)
		}
	}
}

// Fill sets every cell in area to fill, clipped to the buffer's area
func (b *Buffer) Fill(area Rect, fill Cell) {
	clipped := b.area.Intersect(area)
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			b.Set(x, y, fill)
		}
	}
}

// Reset restores every cell to blank without reallocating
func (b *Buffer) Reset() {
	for i := range b.cells {
		b.cells[i] = Blank
	}
}

// Resize re-shapes the buffer to a new area, reusing the backing array
// when capacity allows. Content is discarded; callers resize on terminal
// resize and repaint the whole frame.
func (b *Buffer) Resize(area Rect) {
	size := area.Area()
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.area = area
	b.Reset()
}

// CopyFrom overwrites this buffer's contents with other's. Both buffers
// must describe the same area.
func (b *Buffer) CopyFrom(other *Buffer) {
	if b.area != other.area {
		panic(fmt.Sprintf("buffer: copy between mismatched areas %s and %s", b.area, other.area))
	}
	copy(b.cells, other.cells)
}
