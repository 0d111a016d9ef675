package grit

import "errors"

// Errors reported by the core. Drawing operations clip silently and never
// return these; only checked accessors, constructors, and asset codecs do.
var (
	// ErrOutOfBounds is returned when a coordinate or region lies outside
	// the boundaries of a bitmap or palette range.
	ErrOutOfBounds = errors.New("grit: out of bounds")

	// ErrInvalidDimensions is returned when a bitmap would have a zero or
	// negative width or height.
	ErrInvalidDimensions = errors.New("grit: invalid bitmap dimensions")

	// ErrPaletteSize is returned when a palette read or write involves a
	// color count other than 1 through 256.
	ErrPaletteSize = errors.New("grit: invalid palette size")

	// ErrAssetFormat is returned when palette or bitmap asset data is
	// malformed or uses an unsupported encoding.
	ErrAssetFormat = errors.New("grit: malformed asset data")
)

// Point is an integer pixel coordinate. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned integer rectangle defined by its top-left corner
// and size. Right and Bottom edges are inclusive: a Rect{0, 0, 320, 200}
// spans the pixels (0,0) through (319,199).
type Rect struct {
	X, Y, Width, Height int
}

// NewRect returns a rectangle from a top-left corner and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{x, y, width, height}
}

// RectFromCoords returns the rectangle spanning the two corner points
// given, inclusive. The corners may be given in any order.
func RectFromCoords(x1, y1, x2, y2 int) Rect {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return Rect{x1, y1, x2 - x1 + 1, y2 - y1 + 1}
}

// Right returns the rightmost x coordinate still inside the rectangle.
func (r Rect) Right() int {
	return r.X + r.Width - 1
}

// Bottom returns the bottommost y coordinate still inside the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height - 1
}

// IsEmpty reports whether the rectangle has a zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// Overlaps reports whether r and other share at least one pixel.
func (r Rect) Overlaps(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.X <= other.Right() && r.Right() >= other.X &&
		r.Y <= other.Bottom() && r.Bottom() >= other.Y
}

// ClampTo shrinks r to the portion of it that overlaps other, reporting
// whether any overlap remained. When false is returned r is unchanged and
// represents nothing visible.
func (r *Rect) ClampTo(other Rect) bool {
	if !r.Overlaps(other) {
		return false
	}

	x1, y1 := r.X, r.Y
	x2, y2 := r.Right(), r.Bottom()
	if x1 < other.X {
		x1 = other.X
	}
	if x2 > other.Right() {
		x2 = other.Right()
	}
	if y1 < other.Y {
		y1 = other.Y
	}
	if y2 > other.Bottom() {
		y2 = other.Bottom()
	}

	*r = Rect{x1, y1, x2 - x1 + 1, y2 - y1 + 1}
	return true
}
