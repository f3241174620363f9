package buffer

import "fmt"

// CellUpdate records one changed cell for the backend to apply
type CellUpdate struct {
	X, Y int
	Cell Cell
}

// Diff compares b (the next frame) against previous and returns one
// update per coordinate whose cell differs, in row-major order. Backends
// rely on that ordering to batch sequential writes under one cursor
// position. Continuation cells are compared like any other cell; skipping
// them during output is the flush layer's job, not the diff's.
//
// Both buffers must describe the same area; diffing mismatched shapes is
// a programmer error and panics.
func (b *Buffer) Diff(previous *Buffer) []CellUpdate {
	if b.area != previous.area {
		panic(fmt.Sprintf("buffer: diff between mismatched areas %s and %s", b.area, previous.area))
	}

	var updates []CellUpdate
	i := 0
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		for x := b.area.X; x < b.area.Right(); x++ {
			if b.cells[i] != previous.cells[i] {
				updates = append(updates, CellUpdate{X: x, Y: y, Cell: b.cells[i]})
			}
			i++
		}
	}
	return updates
}

// Apply writes a set of updates into the buffer. Together with Diff this
// round-trips: applying next.Diff(prev) onto a copy of prev yields next.
func (b *Buffer) Apply(updates []CellUpdate) {
	for _, u := range updates {
		b.cells[b.index(u.X, u.Y)] = u.Cell
	}
}
