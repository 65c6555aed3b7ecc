// Package core provides fundamental types for the snake simulation engine.
// It contains no external dependencies (especially no Bubble Tea) to keep
// the engine logic pure and testable.
package core

// Cell is an integer coordinate pair on the grid. Immutable value type.
type Cell struct {
	X, Y int
}

// Offset returns the cell shifted by (dx, dy).
func (c Cell) Offset(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction represents the actor's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	}
	return 0, 0
}

// Opposite returns the 180-degree reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	}
	return d
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Grid is a fixed-size square coordinate space.
// The size is fixed for the lifetime of a run.
type Grid struct {
	Size int
}

// InBounds reports whether the cell lies within the grid.
// Pure function, no side effects.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// Cells returns the total number of cells in the grid.
func (g Grid) Cells() int {
	return g.Size * g.Size
}

// Rect represents an axis-aligned box used for screen layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
