// Planar geometry primitives for Go.
//
// This package answers metric questions (distances, closest points),
// relational questions (which side of a segment, inside or outside a shape)
// and constructs intersections between points, segments, lines, circles,
// ellipses, triangles, rectangles and polygons. Degenerate input such as zero
// length segments or zero radius circles always gets a defined answer.
//
// Every comparison here uses DefaultTolerance. To pick a different tolerance,
// use the methods on advanced.Tolerance directly.
package planar

import "github.com/osuushi/planar/advanced"

type Point = advanced.Point
type Line = advanced.Line
type Segment = advanced.Segment
type Circle = advanced.Circle
type Ellipse = advanced.Ellipse
type Triangle = advanced.Triangle
type Rect = advanced.Rect
type Polygon = advanced.Polygon

type Side = advanced.Side
type Location = advanced.Location
type Containment = advanced.Containment

const (
	Outside = advanced.Outside
	OnEdge  = advanced.OnEdge
	Inside  = advanced.Inside
)

const (
	Epsilon          = advanced.Epsilon
	DefaultTolerance = advanced.DefaultTolerance
)

func Pt(x, y float64) Point {
	return advanced.Pt(x, y)
}

// IntPt builds a point from integer coordinates.
func IntPt(x, y int) Point {
	return advanced.Pt(float64(x), float64(y))
}

// IntPolygon builds a polygon from flat integer coordinate pairs, x0, y0, x1,
// y1, and so on. A trailing odd coordinate is ignored. The closing vertex is
// not added.
func IntPolygon(coords ...int) Polygon {
	points := make([]Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, IntPt(coords[i], coords[i+1]))
	}
	return Polygon{Points: points}
}

func AboutEquals(a, b float64) bool {
	return DefaultTolerance.Equal(a, b)
}

func AboutZero(a float64) bool {
	return DefaultTolerance.Zero(a)
}

// Metrics

func Distance(p, q Point) float64 {
	return advanced.Distance(p, q)
}

func DistanceToLine(p Point, line Line) float64 {
	return advanced.DistanceToLine(p, line)
}

func DistanceToSegment(p Point, s Segment) float64 {
	return advanced.DistanceToSegment(p, s.Start, s.End)
}

func DistanceToEdges(p Point, points []Point) float64 {
	return advanced.DistanceToEdges(p, points)
}

func DistanceToTriangle(p Point, t Triangle) float64 {
	return advanced.DistanceToTriangle(p, t)
}

func DistanceToRect(p Point, r Rect) float64 {
	return advanced.DistanceToRect(p, r)
}

func DistanceToCircle(p Point, c Circle) float64 {
	return advanced.DistanceToCircle(p, c)
}

func DistanceToEllipse(p Point, e Ellipse) float64 {
	return advanced.DistanceToEllipse(p, e)
}

func ClosestPointOnLine(p Point, line Line) Point {
	return advanced.ClosestPointOnLine(p, line)
}

func ClosestPointOnSegment(p Point, s Segment) Point {
	return advanced.ClosestPointOnSegment(p, s.Start, s.End)
}

func ClosestPointOnEdges(p Point, points []Point) Point {
	return advanced.ClosestPointOnEdges(p, points)
}

func ClosestPointOnTriangle(p Point, t Triangle) Point {
	return advanced.ClosestPointOnTriangle(p, t)
}

func ClosestPointOnRect(p Point, r Rect) Point {
	return advanced.ClosestPointOnRect(p, r)
}

func ClosestPointOnCircle(p Point, c Circle) Point {
	return advanced.ClosestPointOnCircle(p, c)
}

func ClosestPointOnEllipse(p Point, e Ellipse) Point {
	return advanced.ClosestPointOnEllipse(p, e)
}

// Orientation and containment

func SideOf(p Point, s Segment) Side {
	return DefaultTolerance.SideOf(p, s.Start, s.End)
}

func LocationOf(p Point, s Segment) Location {
	return DefaultTolerance.LocationOf(p, s.Start, s.End)
}

func TriangleContainment(p Point, t Triangle) Containment {
	return DefaultTolerance.TriangleContainment(p, t)
}

func RectContainment(p Point, r Rect) Containment {
	return DefaultTolerance.RectContainment(p, r)
}

func CircleContainment(p Point, c Circle) Containment {
	return DefaultTolerance.CircleContainment(p, c)
}

func EllipseContainment(p Point, e Ellipse) Containment {
	return DefaultTolerance.EllipseContainment(p, e)
}

func PolygonContainment(p Point, poly Polygon) Containment {
	return DefaultTolerance.PolygonContainment(p, poly)
}

// BelongsToSurface reports whether p is inside poly or on its boundary.
func BelongsToSurface(p Point, poly Polygon) bool {
	return DefaultTolerance.BelongsToSurface(p, poly)
}

// Intersections

func LineIntersect(l1, l2 Line) (Point, bool) {
	return DefaultTolerance.LineIntersect(l1, l2)
}

func SegmentIntersect(s1, s2 Segment) (Point, bool) {
	return DefaultTolerance.SegmentIntersect(s1, s2)
}

func LineCircleIntersect(line Line, c Circle) (p1, p2 Point, count int) {
	return DefaultTolerance.LineCircleIntersect(line, c)
}

func SegmentCircleIntersect(s Segment, c Circle) (p1, p2 Point, count int) {
	return DefaultTolerance.SegmentCircleIntersect(s, c)
}

func LineLocationRelativeToCircle(line Line, c Circle) Containment {
	return DefaultTolerance.LineLocationRelativeToCircle(line, c)
}

// Sampling

func Steps(start, end, step float64) ([]float64, error) {
	return DefaultTolerance.Steps(start, end, step)
}

func GridSteps(min, max Point, step float64) ([]Point, error) {
	return DefaultTolerance.GridSteps(min, max, step)
}
