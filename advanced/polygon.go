package advanced

import (
	"github.com/golang/geo/r2"
	"github.com/sirupsen/logrus"
)

// A polygon is its vertex list, consumed as given. Edge functions walk
// consecutive pairs and never add the closing edge, so callers supply the
// closing vertex themselves: a square has five points. Point-in-polygon treats
// len(Points)-1 as the number of distinct vertices.
type Polygon struct {
	Points []Point
}

func (poly Polygon) Edges() []Segment {
	if len(poly.Points) < 2 {
		return nil
	}
	edges := make([]Segment, 0, len(poly.Points)-1)
	for i := 0; i < len(poly.Points)-1; i++ {
		edges = append(edges, Segment{poly.Points[i], poly.Points[i+1]})
	}
	return edges
}

// Shoelace area over consecutive pairs. Positive for counterclockwise winding
// in a y-up frame.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i := 0; i < len(poly.Points)-1; i++ {
		sum += poly.Points[i].Cross(poly.Points[i+1])
	}
	return sum / 2
}

// IsClockwise reports whether the polygon winds clockwise in a y-up frame,
// which is the winding side based containment expects.
func (poly Polygon) IsClockwise() bool {
	return poly.SignedArea() < 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Bounds is empty for an empty polygon.
func (poly Polygon) Bounds() r2.Rect {
	if len(poly.Points) == 0 {
		return r2.EmptyRect()
	}
	pts := make([]r2.Point, len(poly.Points))
	for i, p := range poly.Points {
		pts[i] = r2Point(p)
	}
	return r2.RectFromPoints(pts...)
}

// Crossing count helper for the plain even-odd rule, with the half open
// convention for vertices on the ray. It has no tolerance and no boundary
// handling, which makes it a useful independent check of PolygonContainment
// for points away from the boundary.
func (poly Polygon) CrossingCount(p Point) int {
	n := len(poly.Points) - 1
	crossingCount := 0
	for i := 0; i < n; i++ {
		a := poly.Points[i]
		b := poly.Points[CircularIndex(i+1, n)]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x < p.X {
				crossingCount++
			}
		}
	}
	return crossingCount
}

// BelongsToSurface reports whether p is inside the polygon or on its boundary.
func (tol Tolerance) BelongsToSurface(p Point, poly Polygon) bool {
	return tol.PolygonContainment(p, poly) != Outside
}

// PolygonContainment is a ray casting test with a horizontal ray toward -X.
//
// The delicate part is the boundary touching the ray's horizontal. A vertex
// lying on it would be counted once for each of its two edges, and a
// horizontal edge lying on it has no x intercept at all. So vertices on the
// horizontal are skipped as a run, and a crossing is only counted when the
// walk leaves the run on the opposite side from where it entered. In that
// case the crossing is wherever the run is; since p is not on any edge (that
// was checked first), the whole run lies on one side of p and the X of its
// first vertex is enough.
//
// The walk starts at a vertex off the horizontal and takes exactly one step per
// vertex, so it terminates even on self intersecting input.
func (tol Tolerance) PolygonContainment(p Point, poly Polygon) Containment {
	pts := poly.Points
	n := len(pts) - 1
	if n < 2 {
		return Outside
	}

	for i := 0; i < n; i++ {
		if DistanceToSegment(p, pts[i], pts[i+1]) < float64(tol) {
			return OnEdge
		}
	}

	anchor := -1
	for i := 0; i < n; i++ {
		if !tol.Equal(pts[i].Y, p.Y) {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		// Every vertex is on the horizontal through p, and p is not on the
		// boundary: the polygon is flat.
		return Outside
	}

	crossings := 0
	prev := pts[anchor]
	prevAbove := prev.Y > p.Y
	inRun := false
	var runX float64
	for step := 1; step <= n; step++ {
		cur := pts[CircularIndex(anchor+step, n)]
		if tol.Equal(cur.Y, p.Y) {
			if !inRun {
				inRun = true
				runX = cur.X
			}
			continue
		}

		curAbove := cur.Y > p.Y
		if curAbove != prevAbove {
			x := runX
			if !inRun {
				// Both vertices are off the horizontal on opposite sides, so
				// cur.Y != prev.Y.
				x = prev.X + (p.Y-prev.Y)*(cur.X-prev.X)/(cur.Y-prev.Y)
			}
			if tol.Equal(x, p.X) {
				return OnEdge
			}
			if x < p.X {
				crossings++
			}
		}
		inRun = false
		prev, prevAbove = cur, curAbove
	}

	if l := trace(); l != nil {
		l.WithFields(logrus.Fields{
			"point":     p,
			"vertices":  n,
			"anchor":    anchor,
			"crossings": crossings,
		}).Debug("ray cast")
	}

	if crossings%2 == 1 {
		return Inside
	}
	return Outside
}

func r2Point(p Point) r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Bounds of the canonical rectangle.
func (r Rect) Bounds() r2.Rect {
	return r2.RectFromPoints(r2Point(r.Min), r2Point(r.Max))
}
