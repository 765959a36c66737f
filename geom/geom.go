// Package geom provides the 2D primitives shared by the layout solvers:
// sizes, points, rectangles and the axis helpers used to write
// direction-agnostic layout code.
package geom

// Size is a width/height pair in pixels.
type Size struct {
	W, H float32
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.W == 0 && s.H == 0
}

// Valid reports whether the size is usable for layout. Degenerate
// (zero or negative) dimensions are substituted by callers rather
// than propagated into the solver.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

// Point is a position in pixels, relative to the container origin.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle: origin plus extent.
type Rect struct {
	X, Y, W, H float32
}

// RectOf assembles a rectangle from a position and a size.
func RectOf(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Contains reports whether the point lies within the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Axis is a layout direction, either horizontal or vertical.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Main returns the size's extent along the axis.
func (a Axis) Main(s Size) float32 {
	if a == Horizontal {
		return s.W
	}
	return s.H
}

// Cross returns the size's extent perpendicular to the axis.
func (a Axis) Cross(s Size) float32 {
	if a == Horizontal {
		return s.H
	}
	return s.W
}

// Pt builds a point from main- and cross-axis coordinates.
func (a Axis) Pt(main, cross float32) Point {
	if a == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

// SizeOf builds a size from main- and cross-axis extents.
func (a Axis) SizeOf(main, cross float32) Size {
	if a == Horizontal {
		return Size{W: main, H: cross}
	}
	return Size{W: cross, H: main}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
