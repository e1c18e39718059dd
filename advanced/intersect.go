package advanced

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/sirupsen/logrus"
)

// LineIntersect intersects two infinite lines.
//
// A line whose defining points coincide is a point, and is handled before any
// division: two points intersect iff they coincide, and a point intersects a
// line iff it is within tolerance of the other line's defining segment.
// Parallel lines never intersect, even when they are coincident; callers that
// care about overlap must test for it themselves. On failure the point is
// NaNPoint.
func (tol Tolerance) LineIntersect(l1, l2 Line) (Point, bool) {
	if p, found, ok := tol.intersectDegenerate(l1.A, l1.B, l2.A, l2.B); ok {
		return p, found
	}
	t, _, ok := tol.solveParametric(l1.A, l1.B, l2.A, l2.B)
	if !ok {
		return NaNPoint(), false
	}
	return l1.A.Lerp(l1.B, t), true
}

// SegmentIntersect intersects two bounded segments. Bounding boxes are
// compared first (inflated by the tolerance), then the lines are solved as in
// LineIntersect and both parameters must fall in [0, 1], again inflated by the
// tolerance.
func (tol Tolerance) SegmentIntersect(s1, s2 Segment) (Point, bool) {
	if !segmentBounds(s1).ExpandedByMargin(float64(tol)).Intersects(segmentBounds(s2)) {
		return NaNPoint(), false
	}
	if p, found, ok := tol.intersectDegenerate(s1.Start, s1.End, s2.Start, s2.End); ok {
		return p, found
	}
	t, u, ok := tol.solveParametric(s1.Start, s1.End, s2.Start, s2.End)
	if !ok || !tol.inUnitInterval(t) || !tol.inUnitInterval(u) {
		if l := trace(); l != nil {
			l.WithFields(logrus.Fields{
				"s1": s1, "s2": s2, "t": t, "u": u, "solved": ok,
			}).Debug("segments miss")
		}
		return NaNPoint(), false
	}
	return s1.Start.Lerp(s1.End, t), true
}

// intersectDegenerate handles the cases where either line collapses to a
// point. ok is false when neither does and the general solver must run.
func (tol Tolerance) intersectDegenerate(a1, b1, a2, b2 Point) (p Point, found, ok bool) {
	degenerate1 := tol.PointsEqual(a1, b1)
	degenerate2 := tol.PointsEqual(a2, b2)
	switch {
	case degenerate1 && degenerate2:
		if tol.PointsEqual(a1, a2) {
			return a1, true, true
		}
		return NaNPoint(), false, true
	case degenerate1:
		if DistanceToSegment(a1, a2, b2) < float64(tol) {
			return a1, true, true
		}
		return NaNPoint(), false, true
	case degenerate2:
		if DistanceToSegment(a2, a1, b1) < float64(tol) {
			return a2, true, true
		}
		return NaNPoint(), false, true
	}
	return Point{}, false, false
}

// solveParametric solves a1 + t(b1-a1) = a2 + u(b2-a2) by Cramer's rule. ok is
// false when the determinant is within tolerance of zero.
func (tol Tolerance) solveParametric(a1, b1, a2, b2 Point) (t, u float64, ok bool) {
	d1 := b1.Sub(a1)
	d2 := b2.Sub(a2)
	det := d1.Cross(d2)
	if tol.Zero(det) {
		return 0, 0, false
	}
	w := a2.Sub(a1)
	return w.Cross(d2) / det, w.Cross(d1) / det, true
}

func (tol Tolerance) inUnitInterval(t float64) bool {
	return t >= -float64(tol) && t <= 1+float64(tol)
}

func segmentBounds(s Segment) r2.Rect {
	return r2.RectFromPoints(r2Point(s.Start), r2Point(s.End))
}

// LineCircleIntersect solves A t² + B t + C = 0 along the line's direction.
//
// A degenerate direction or a negative discriminant gives no points, a
// discriminant within tolerance of zero gives the tangent point in p1, and
// otherwise p1 comes from +√disc and p2 from -√disc. That order is part of the
// contract. Missing points are NaNPoint.
func (tol Tolerance) LineCircleIntersect(line Line, circle Circle) (p1, p2 Point, count int) {
	t1, t2, count := tol.lineCircleParams(line.A, line.B, circle)
	p1, p2 = NaNPoint(), NaNPoint()
	if count > 0 {
		p1 = line.A.Lerp(line.B, t1)
	}
	if count > 1 {
		p2 = line.A.Lerp(line.B, t2)
	}
	return p1, p2, count
}

// SegmentCircleIntersect keeps the LineCircleIntersect solutions that fall on
// the segment, in the same order.
func (tol Tolerance) SegmentCircleIntersect(s Segment, circle Circle) (p1, p2 Point, count int) {
	t1, t2, n := tol.lineCircleParams(s.Start, s.End, circle)
	p1, p2 = NaNPoint(), NaNPoint()
	for i, t := range [2]float64{t1, t2} {
		if i >= n || !tol.inUnitInterval(t) {
			continue
		}
		if count == 0 {
			p1 = s.Start.Lerp(s.End, t)
		} else {
			p2 = s.Start.Lerp(s.End, t)
		}
		count++
	}
	return p1, p2, count
}

func (tol Tolerance) lineCircleParams(a, b Point, circle Circle) (t1, t2 float64, count int) {
	if math.IsNaN(circle.Radius) || circle.Radius < 0 {
		return 0, 0, 0
	}
	d := b.Sub(a)
	f := a.Sub(circle.Center)
	qa := d.Dot(d)
	qb := 2 * f.Dot(d)
	qc := f.Dot(f) - circle.Radius*circle.Radius
	if tol.Zero(qa) {
		return 0, 0, 0
	}

	disc := qb*qb - 4*qa*qc
	switch {
	case tol.Zero(disc):
		t := -qb / (2 * qa)
		return t, t, 1
	case disc < 0:
		return 0, 0, 0
	}
	sqrtDisc := math.Sqrt(disc)
	return (-qb + sqrtDisc) / (2 * qa), (-qb - sqrtDisc) / (2 * qa), 2
}

// LineLocationRelativeToCircle classifies a line by how many times it meets
// the circle: a secant is Inside, a tangent OnEdge, a miss Outside.
func (tol Tolerance) LineLocationRelativeToCircle(line Line, circle Circle) Containment {
	_, _, count := tol.LineCircleIntersect(line, circle)
	switch count {
	case 2:
		return Inside
	case 1:
		return OnEdge
	}
	return Outside
}
