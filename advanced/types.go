package advanced

import "math"

type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// The infinite line through A and B.
type Line struct {
	A, B Point
}

// Segments are directed. Start and End are distinguishable, which is what the
// Behind/Beyond/Start/End classifications rely on.
type Segment struct {
	Start Point
	End   Point
}

// A radius of zero is a valid, degenerate point circle.
type Circle struct {
	Center Point
	Radius float64
}

// Ellipses are axis aligned. SemiMajor is the semi-axis along X and SemiMinor
// the semi-axis along Y; nothing requires SemiMajor >= SemiMinor.
type Ellipse struct {
	Center    Point
	SemiMajor float64
	SemiMinor float64
}

// IsValid reports whether both semi-axes are positive and finite. Operations
// on an invalid ellipse return Outside or NaN rather than dividing by zero.
func (e Ellipse) IsValid() bool {
	return isPositiveFinite(e.SemiMajor) && isPositiveFinite(e.SemiMinor)
}

type Triangle struct {
	A, B, C Point
}

// Closed returns the apexes as a closed boundary, A repeated at the end.
func (t Triangle) Closed() []Point {
	return []Point{t.A, t.B, t.C, t.A}
}

func (t Triangle) Edges() [3]Segment {
	return [3]Segment{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// SignedArea is positive when the apexes wind counterclockwise in a y-up
// frame.
func (t Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

// Axis aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Canon returns the rectangle with Min and Max swapped per axis where needed.
func (r Rect) Canon() Rect {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Corners returns the closed boundary of the canonical rectangle, in the
// winding that side based containment expects.
func (r Rect) Corners() []Point {
	r = r.Canon()
	return []Point{
		r.Min,
		{r.Min.X, r.Max.Y},
		r.Max,
		{r.Max.X, r.Min.Y},
		r.Min,
	}
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
