package advanced

import "math"

type Containment int

const (
	Outside Containment = iota
	OnEdge
	Inside
)

func (c Containment) String() string {
	switch c {
	case Outside:
		return "Outside"
	case OnEdge:
		return "OnEdge"
	case Inside:
		return "Inside"
	}
	return "Containment(?)"
}

// ConvexContainment classifies p against a closed convex boundary, consumed as
// consecutive pairs (the closing vertex must be present). p is outside iff it
// is strictly Left of some edge, and on the edge iff any edge finds it
// OnSegment. The collinear band is tolerance on the raw cross product, so it
// narrows as edges get longer; a point in the band of a short edge is OnEdge
// even when it is off the edge's ends.
//
// A boundary whose area is within tolerance of zero has no interior: p is on
// its edge when it is within tolerance of the chain, and outside otherwise.
// Zero length edges carry no orientation and are skipped.
func (tol Tolerance) ConvexContainment(p Point, boundary []Point) Containment {
	if len(boundary) == 0 {
		return Outside
	}
	if tol.Zero(Polygon{boundary}.SignedArea()) {
		if DistanceToEdges(p, boundary) < float64(tol) {
			return OnEdge
		}
		return Outside
	}

	onEdge := false
	for i := 0; i+1 < len(boundary); i++ {
		start, end := boundary[i], boundary[i+1]
		if tol.PointsEqual(start, end) {
			continue
		}
		switch tol.SideOf(p, start, end) {
		case LeftOf:
			return Outside
		case OnSegment:
			onEdge = true
		}
	}
	if onEdge {
		return OnEdge
	}
	return Inside
}

// Winding sensitive: see the package documentation.
func (tol Tolerance) TriangleContainment(p Point, t Triangle) Containment {
	return tol.ConvexContainment(p, t.Closed())
}

// Rectangles are canonicalized first, so their corners are always in the
// right winding.
func (tol Tolerance) RectContainment(p Point, r Rect) Containment {
	return tol.ConvexContainment(p, r.Corners())
}

// CircleContainment compares the squared center distance with the squared
// radius. A zero radius circle contains nothing, and only its center is on
// the edge.
func (tol Tolerance) CircleContainment(p Point, c Circle) Containment {
	if math.IsNaN(c.Radius) || c.Radius < 0 {
		return Outside
	}
	distSq := DistanceSqr(p, c.Center)
	radiusSq := c.Radius * c.Radius
	switch {
	case tol.Equal(distSq, radiusSq):
		return OnEdge
	case distSq < radiusSq:
		return Inside
	}
	return Outside
}

// EllipseContainment compares the normalized quadratic form dx²/a² + dy²/b²
// with 1.
func (tol Tolerance) EllipseContainment(p Point, e Ellipse) Containment {
	if !e.IsValid() {
		return Outside
	}
	form := ellipseForm(p, e)
	switch {
	case tol.Equal(form, 1):
		return OnEdge
	case form < 1:
		return Inside
	}
	return Outside
}
