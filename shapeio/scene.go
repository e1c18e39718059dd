// Package shapeio reads scenes of planar shapes from SVG, WKT and a plain
// text format, and writes points and polygons back out as WKT.
//
// Coordinates are taken as written. In particular SVG documents are not
// flipped, so a polygon that looks counterclockwise on screen is clockwise in
// the y-up frame the geometry functions describe.
package shapeio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/golang/geo/r2"
	"github.com/osuushi/planar/advanced"
	"github.com/pkg/errors"
)

// Scene is a bag of shapes grouped by kind. Polygons are always closed, with
// the closing vertex repeated. Chains are open polylines.
type Scene struct {
	Points   []advanced.Point
	Segments []advanced.Segment
	Chains   []advanced.Polygon
	Polygons []advanced.Polygon
	Circles  []advanced.Circle
	Ellipses []advanced.Ellipse
	Rects    []advanced.Rect
}

// Len is the total number of shapes.
func (s *Scene) Len() int {
	return len(s.Points) + len(s.Segments) + len(s.Chains) + len(s.Polygons) +
		len(s.Circles) + len(s.Ellipses) + len(s.Rects)
}

// Bounds covers every shape in the scene, including the full extent of
// circles and ellipses. It is empty for an empty scene.
func (s *Scene) Bounds() r2.Rect {
	bounds := r2.EmptyRect()
	add := func(p advanced.Point) {
		bounds = bounds.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	for _, p := range s.Points {
		add(p)
	}
	for _, seg := range s.Segments {
		add(seg.Start)
		add(seg.End)
	}
	for _, list := range [][]advanced.Polygon{s.Chains, s.Polygons} {
		for _, poly := range list {
			for _, p := range poly.Points {
				add(p)
			}
		}
	}
	for _, c := range s.Circles {
		add(c.Center.Sub(advanced.Pt(c.Radius, c.Radius)))
		add(c.Center.Add(advanced.Pt(c.Radius, c.Radius)))
	}
	for _, e := range s.Ellipses {
		add(e.Center.Sub(advanced.Pt(e.SemiMajor, e.SemiMinor)))
		add(e.Center.Add(advanced.Pt(e.SemiMajor, e.SemiMinor)))
	}
	for _, r := range s.Rects {
		add(r.Min)
		add(r.Max)
	}
	return bounds
}

// Merge appends every shape of other to s.
func (s *Scene) Merge(other *Scene) {
	s.Points = append(s.Points, other.Points...)
	s.Segments = append(s.Segments, other.Segments...)
	s.Chains = append(s.Chains, other.Chains...)
	s.Polygons = append(s.Polygons, other.Polygons...)
	s.Circles = append(s.Circles, other.Circles...)
	s.Ellipses = append(s.Ellipses, other.Ellipses...)
	s.Rects = append(s.Rects, other.Rects...)
}

// Load reads a scene from a file, picking the format from the extension
// (.svg, .wkt, .txt) and falling back to Parse for anything else.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	var scene *Scene
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		scene, err = ParseSVG(bytes.NewReader(data))
	case ".wkt":
		scene, err = ParseWKT(string(data))
	case ".txt":
		scene, err = ParseText(bytes.NewReader(data))
	default:
		scene, err = Parse(data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return scene, nil
}

// ReadAll reads r to the end and parses it with Parse.
func ReadAll(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}
	return Parse(data)
}

// Parse sniffs the format from the first non-space character: '<' is SVG, a
// letter is WKT, and anything else is the text format.
func Parse(data []byte) (*Scene, error) {
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	switch {
	case len(trimmed) == 0:
		return &Scene{}, nil
	case trimmed[0] == '<':
		return ParseSVG(bytes.NewReader(data))
	case unicode.IsLetter(rune(trimmed[0])):
		return ParseWKT(string(data))
	}
	return ParseText(bytes.NewReader(data))
}

// closeRing repeats the first point at the end when the caller didn't. A last
// point within tolerance of the first already closes the ring, and is snapped
// onto it.
func closeRing(points []advanced.Point) []advanced.Point {
	if len(points) == 0 {
		return points
	}
	last := len(points) - 1
	if last > 0 && advanced.DefaultTolerance.PointsEqual(points[0], points[last]) {
		points[last] = points[0]
		return points
	}
	return append(points, points[0])
}
