package advanced

import "math"

// Foot of the perpendicular from p. NaNPoint when the line is degenerate.
func ClosestPointOnLine(p Point, line Line) Point {
	d := line.B.Sub(line.A)
	lengthSq := d.LengthSquared()
	if lengthSq == 0 {
		return NaNPoint()
	}
	t := p.Sub(line.A).Dot(d) / lengthSq
	return line.A.Add(d.Mul(t))
}

// ClosestPointOnSegment mirrors DistanceToSegment, check for check, and returns
// the witness point instead of the distance.
func ClosestPointOnSegment(p, start, end Point) Point {
	d := end.Sub(start)
	if p.Sub(end).Dot(d) >= 0 {
		return end
	}
	if p.Sub(start).Dot(d) <= 0 {
		return start
	}
	t := p.Sub(start).Dot(d) / d.LengthSquared()
	return start.Add(d.Mul(t))
}

// ClosestPointOnEdges projects onto the closest segment of the chain formed by
// consecutive points. When two segments are equally close the earlier one
// wins. NaNPoint for an empty chain.
func ClosestPointOnEdges(p Point, points []Point) Point {
	switch len(points) {
	case 0:
		return NaNPoint()
	case 1:
		return points[0]
	}
	best := points[0]
	bestDist := math.Inf(1)
	for i := 0; i < len(points)-1; i++ {
		candidate := ClosestPointOnSegment(p, points[i], points[i+1])
		if dist := DistanceSqr(p, candidate); dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}

// The witness is always on the boundary, even for points inside.
func ClosestPointOnTriangle(p Point, t Triangle) Point {
	return ClosestPointOnEdges(p, t.Closed())
}

// The witness is always on the boundary, even for points inside.
func ClosestPointOnRect(p Point, r Rect) Point {
	return ClosestPointOnEdges(p, r.Corners())
}

// Every boundary point is equally close to the center, so a point at the
// center projects to center + (radius, 0).
func ClosestPointOnCircle(p Point, c Circle) Point {
	v := p.Sub(c.Center)
	length := v.Length()
	if length == 0 {
		return Point{c.Center.X + c.Radius, c.Center.Y}
	}
	return c.Center.Add(v.Mul(c.Radius / length))
}

const (
	ellipseIterations   = 4
	ellipseInitialAngle = math.Pi / 4
)

// The ellipse foot point has no closed form. We fold the point into the first
// quadrant, refine the parametric angle θ of (a cos θ, b sin θ) with Newton's
// method on the derivative of the squared distance, and mirror the result
// back. The iteration count is fixed and is not a convergence guarantee.
func ClosestPointOnEllipse(p Point, e Ellipse) Point {
	if !e.IsValid() {
		return NaNPoint()
	}
	a, b := e.SemiMajor, e.SemiMinor
	offset := p.Sub(e.Center)
	px, py := math.Abs(offset.X), math.Abs(offset.Y)

	theta := ellipseInitialAngle
	for i := 0; i < ellipseIterations; i++ {
		sin, cos := math.Sincos(theta)
		// g is half the derivative of the squared distance with respect to θ,
		// gp its derivative.
		g := (b*b-a*a)*sin*cos + a*px*sin - b*py*cos
		gp := (b*b-a*a)*(cos*cos-sin*sin) + a*px*cos + b*py*sin
		if gp == 0 {
			break
		}
		theta = clamp(theta-g/gp, 0, math.Pi/2)
	}

	sin, cos := math.Sincos(theta)
	return Point{
		X: e.Center.X + math.Copysign(a*cos, offset.X),
		Y: e.Center.Y + math.Copysign(b*sin, offset.Y),
	}
}
