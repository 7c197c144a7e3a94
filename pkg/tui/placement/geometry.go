// ABOUTME: Integer geometry for overlay placement: Rect, Size, Viewport in terminal cells
// ABOUTME: Value types only; captured once from a measurement and never mutated

package placement

// Rect is an axis-aligned box in viewport coordinates (cells).
// Top/Left are inclusive; Right/Bottom are exclusive edges.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// RectFrom builds a Rect from its origin and dimensions.
func RectFrom(top, left, width, height int) Rect {
	return Rect{Top: top, Left: left, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// IsZero reports whether the rect has no area.
func (r Rect) IsZero() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Size returns the dimensions of the rect.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Within reports whether r lies inside the viewport inset by pad on every edge.
func (r Rect) Within(vp Viewport, pad int) bool {
	return r.Left >= pad && r.Top >= pad &&
		r.Right() <= vp.Width-pad && r.Bottom() <= vp.Height-pad
}

// Size is a width/height pair, measured or estimated.
type Size struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// DefaultContentSize is the estimate used for any content dimension that has
// not been measured yet (non-positive).
var DefaultContentSize = Size{Width: 32, Height: 10}

// orDefault replaces non-positive dimensions with fallback, per axis.
func (s Size) orDefault(fallback Size) Size {
	if s.Width <= 0 {
		s.Width = fallback.Width
	}
	if s.Height <= 0 {
		s.Height = fallback.Height
	}
	return s
}

// Viewport is the currently visible area.
type Viewport struct {
	Width  int
	Height int
}

// Valid reports whether the viewport has a usable area.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}
