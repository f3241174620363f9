// Package flush turns buffer diffs into a minimal ordered stream of
// backend write operations: one cursor move per dirty run, one style
// change per actual style transition, continuation cells skipped.
package flush

import (
	"github.com/tamboui/tamboui/buffer"
	"github.com/tamboui/tamboui/style"
)

// Flusher drives a Backend from successive frames. It retains the
// previously flushed frame and emits only the cells that changed.
// Single render pass ownership, no locking; callers serialize access.
type Flusher struct {
	backend Backend
	prev    *buffer.Buffer

	cursorX     int
	cursorY     int
	cursorValid bool

	lastStyle  style.Style
	styleValid bool

	forceRepaint bool
}

// NewFlusher creates a flusher writing to backend
func NewFlusher(backend Backend) *Flusher {
	return &Flusher{backend: backend}
}

// Invalidate forces the next Flush to repaint every cell, discarding the
// retained frame. Use after the terminal was disturbed externally.
func (f *Flusher) Invalidate() {
	f.forceRepaint = true
	f.cursorValid = false
	f.styleValid = false
}

// Flush emits the difference between next and the previously flushed
// frame, then retains next's content for the following cycle. The first
// flush after construction, a resize, or Invalidate repaints fully.
func (f *Flusher) Flush(next *buffer.Buffer) {
	if f.prev == nil || f.prev.Area() != next.Area() {
		f.prev = buffer.Empty(next.Area())
		f.forceRepaint = true
	}

	if f.forceRepaint {
		f.repaint(next)
	} else {
		f.apply(next.Diff(f.prev))
	}

	f.prev.CopyFrom(next)
	f.forceRepaint = false
}

// apply writes a row-major update sequence to the backend
func (f *Flusher) apply(updates []buffer.CellUpdate) {
	for _, u := range updates {
		if u.Cell.Continuation {
			continue
		}
		f.emit(u.X, u.Y, u.Cell)
	}
}

// repaint writes every lead cell of next unconditionally
func (f *Flusher) repaint(next *buffer.Buffer) {
	area := next.Area()
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			cell := next.Get(x, y)
			if cell.Continuation {
				continue
			}
			f.emit(x, y, cell)
		}
	}
}

// emit positions, styles, and writes one cell, tracking cursor and style
// state so sequential writes skip redundant backend calls
func (f *Flusher) emit(x, y int, cell buffer.Cell) {
	if !f.cursorValid || x != f.cursorX || y != f.cursorY {
		f.backend.MoveTo(x, y)
		f.cursorX = x
		f.cursorY = y
		f.cursorValid = true
	}

	if !f.styleValid || cell.Style != f.lastStyle {
		f.backend.SetStyle(cell.Style)
		f.lastStyle = cell.Style
		f.styleValid = true
	}

	f.backend.Write(cell.Symbol)

	// The terminal advances by the symbol's display width
	f.cursorX += cell.Width()
}
