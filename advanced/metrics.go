package advanced

import "math"

func Distance(p, q Point) float64 {
	return math.Sqrt(DistanceSqr(p, q))
}

// DistanceSqr skips the square root, for comparisons.
func DistanceSqr(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Distance from p to the infinite line. NaN when the line's defining points
// coincide; callers must guard for that.
func DistanceToLine(p Point, line Line) float64 {
	foot := ClosestPointOnLine(p, line)
	if foot.IsNaN() {
		return math.NaN()
	}
	return Distance(p, foot)
}

// DistanceToSegment clamps the projection to the segment. The order of the
// checks matters: beyond end first, then behind start, and only then the
// perpendicular distance. A zero length segment always takes the first branch,
// so the perpendicular division is never by zero.
func DistanceToSegment(p, start, end Point) float64 {
	d := end.Sub(start)
	if p.Sub(end).Dot(d) >= 0 {
		return Distance(p, end)
	}
	if p.Sub(start).Dot(d) <= 0 {
		return Distance(p, start)
	}
	return math.Abs(d.Cross(p.Sub(start))) / d.Length()
}

// DistanceToEdges is the minimum distance from p to the chain of segments
// formed by consecutive points. The closing edge is not implied. An empty chain
// is infinitely far away, a one point chain is just that point.
func DistanceToEdges(p Point, points []Point) float64 {
	switch len(points) {
	case 0:
		return math.Inf(1)
	case 1:
		return Distance(p, points[0])
	}
	min := math.Inf(1)
	for i := 0; i < len(points)-1; i++ {
		min = math.Min(min, DistanceToSegment(p, points[i], points[i+1]))
	}
	return min
}

// Unsigned distance to the triangle's boundary.
func DistanceToTriangle(p Point, t Triangle) float64 {
	return DistanceToEdges(p, t.Closed())
}

// Unsigned distance to the rectangle's boundary.
func DistanceToRect(p Point, r Rect) float64 {
	return DistanceToEdges(p, r.Corners())
}

// DistanceToCircle is signed: negative inside the circle.
func DistanceToCircle(p Point, c Circle) float64 {
	return Distance(p, c.Center) - c.Radius
}

// DistanceToEllipse is the distance to the closest boundary point found by
// ClosestPointOnEllipse, negative inside the ellipse. NaN for an invalid
// ellipse.
func DistanceToEllipse(p Point, e Ellipse) float64 {
	if !e.IsValid() {
		return math.NaN()
	}
	d := Distance(p, ClosestPointOnEllipse(p, e))
	if ellipseForm(p, e) < 1 {
		return -d
	}
	return d
}

// ellipseForm is dx²/a² + dy²/b²: 1 on the boundary.
func ellipseForm(p Point, e Ellipse) float64 {
	dx := (p.X - e.Center.X) / e.SemiMajor
	dy := (p.Y - e.Center.Y) / e.SemiMinor
	return dx*dx + dy*dy
}
