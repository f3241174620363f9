package buffer

import "github.com/tamboui/tamboui/style"

// Region is a relative-coordinate view into a buffer. Widget code draws
// at (0,0)-based positions and the region translates into the buffer's
// absolute area, silently dropping writes that land outside its bounds.
type Region struct {
	buf  *Buffer
	area Rect
}

// View returns a region over area, clipped to the buffer's own area
func (b *Buffer) View(area Rect) Region {
	return Region{buf: b, area: b.area.Intersect(area)}
}

// Sub returns a nested region relative to r, clipped to r's bounds
func (r Region) Sub(x, y, w, h int) Region {
	sub := Rect{X: r.area.X + x, Y: r.area.Y + y, Width: w, Height: h}
	return Region{buf: r.buf, area: r.area.Intersect(sub)}
}

// Inset returns the region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return Region{buf: r.buf, area: r.area.Inner(n)}
}

// Size returns the region dimensions
func (r Region) Size() (w, h int) {
	return r.area.Width, r.area.Height
}

// Bounds returns the absolute area the region covers
func (r Region) Bounds() Rect {
	return r.area
}

// Set writes a cell at region-relative coordinates; out-of-bounds
// writes are dropped rather than panicking, since widgets routinely
// paint past their clip edge
func (r Region) Set(x, y int, cell Cell) {
	absX, absY := r.area.X+x, r.area.Y+y
	if !r.area.Contains(absX, absY) {
		return
	}
	r.buf.Set(absX, absY, cell)
}

// Get reads a cell at region-relative coordinates. The second return is
// false outside the region.
func (r Region) Get(x, y int) (Cell, bool) {
	absX, absY := r.area.X+x, r.area.Y+y
	if !r.area.Contains(absX, absY) {
		return Cell{}, false
	}
	return r.buf.Get(absX, absY), true
}

// Text writes a string at region-relative coordinates, clipped to the
// region's edges
func (r Region) Text(x, y int, text string, st style.Style) {
	r.buf.setStringClipped(r.area, r.area.X+x, r.area.Y+y, text, st)
}

// Fill fills the whole region with fill
func (r Region) Fill(fill Cell) {
	r.buf.Fill(r.area, fill)
}

// Style patches the style of every cell in the region
func (r Region) Style(st style.Style) {
	r.buf.SetStyle(r.area, st)
}
