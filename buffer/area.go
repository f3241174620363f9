package buffer

import "fmt"

// Rect is a rectangular area in absolute terminal coordinates
type Rect struct {
	X, Y, Width, Height int
}

// NewRect creates a rectangle from origin and dimensions
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the first column past the right edge
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Area returns the number of cells covered
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Contains returns true if (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rectangles, or a zero-size
// rectangle when they are disjoint
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right < x {
		right = x
	}
	if bottom < y {
		bottom = y
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Inner returns the rectangle shrunk by n cells on all sides
func (r Rect) Inner(n int) Rect {
	if r.Width < 2*n || r.Height < 2*n {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
}

// String formats the rectangle for panic messages and test output
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d at (%d,%d)", r.Width, r.Height, r.X, r.Y)
}
