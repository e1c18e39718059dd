package shapeio

import (
	"github.com/osuushi/planar/advanced"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// WKTDecimalDigits bounds the precision of written coordinates.
const WKTDecimalDigits = 6

// ParseWKT reads one WKT geometry. Collections and multi geometries are
// flattened into the scene. A two point LINESTRING is a segment, a longer one
// a chain. For polygons the exterior ring becomes a polygon and any interior
// rings become closed chains, since polygons here have no holes.
func ParseWKT(s string) (scene *Scene, err error) {
	defer func() {
		recoveredErr := HandleLoadPanicRecover(recover())
		if recoveredErr != nil {
			scene = nil
			err = recoveredErr
		}
	}()

	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "parsing wkt")
	}
	scene = &Scene{}
	scene.addGeometry(g)
	return scene, nil
}

func (s *Scene) addGeometry(g geom.T) {
	switch g := g.(type) {
	case *geom.Point:
		if len(g.FlatCoords()) == 0 {
			return
		}
		if p := coordPoint(g.Coords()); !p.IsNaN() {
			s.Points = append(s.Points, p)
		}
	case *geom.MultiPoint:
		for i := 0; i < g.NumPoints(); i++ {
			s.addGeometry(g.Point(i))
		}
	case *geom.LineString:
		points := coordPoints(g.Coords())
		switch len(points) {
		case 0:
		case 1:
			fatalf("linestring with a single point")
		case 2:
			s.Segments = append(s.Segments, advanced.Segment{Start: points[0], End: points[1]})
		default:
			s.Chains = append(s.Chains, advanced.Polygon{Points: points})
		}
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			s.addGeometry(g.LineString(i))
		}
	case *geom.Polygon:
		for i := 0; i < g.NumLinearRings(); i++ {
			ring := advanced.Polygon{Points: closeRing(coordPoints(g.LinearRing(i).Coords()))}
			if len(ring.Points) < 4 {
				fatalf("polygon ring %d has %d points, need at least 4", i, len(ring.Points))
			}
			if i == 0 {
				s.Polygons = append(s.Polygons, ring)
			} else {
				s.Chains = append(s.Chains, ring)
			}
		}
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			s.addGeometry(g.Polygon(i))
		}
	case *geom.GeometryCollection:
		for _, child := range g.Geoms() {
			s.addGeometry(child)
		}
	default:
		fatalf("unsupported geometry %T", g)
	}
}

func coordPoint(c geom.Coord) advanced.Point {
	return advanced.Pt(c[0], c[1])
}

func coordPoints(coords []geom.Coord) []advanced.Point {
	points := make([]advanced.Point, len(coords))
	for i, c := range coords {
		points[i] = coordPoint(c)
	}
	return points
}

// PointWKT writes p as a WKT POINT. The NaN point, which the solvers return
// for "no solution", is POINT EMPTY.
func PointWKT(p advanced.Point) (string, error) {
	if p.IsNaN() {
		return "POINT EMPTY", nil
	}
	return wkt.Marshal(
		geom.NewPointFlat(geom.XY, []float64{p.X, p.Y}),
		wkt.EncodeOptionWithMaxDecimalDigits(WKTDecimalDigits),
	)
}

// PolygonWKT writes poly as a single ring WKT POLYGON, closing the ring if
// the closing vertex is missing.
func PolygonWKT(poly advanced.Polygon) (string, error) {
	if len(poly.Points) == 0 {
		return "POLYGON EMPTY", nil
	}
	points := closeRing(append([]advanced.Point(nil), poly.Points...))
	flat := make([]float64, 0, 2*len(points))
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	return wkt.Marshal(
		geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}),
		wkt.EncodeOptionWithMaxDecimalDigits(WKTDecimalDigits),
	)
}

// SegmentWKT writes s as a two point WKT LINESTRING.
func SegmentWKT(s advanced.Segment) (string, error) {
	return wkt.Marshal(
		geom.NewLineStringFlat(geom.XY, []float64{s.Start.X, s.Start.Y, s.End.X, s.End.Y}),
		wkt.EncodeOptionWithMaxDecimalDigits(WKTDecimalDigits),
	)
}
