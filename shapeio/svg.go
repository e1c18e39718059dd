package shapeio

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/planar/advanced"
	"github.com/pkg/errors"
)

// This is not a full SVG reader. It walks the element tree and collects the
// basic shapes: polygon, polyline, line, circle, ellipse and rect. Paths,
// transforms and units other than px are ignored.

func ParseSVG(r io.Reader) (scene *Scene, err error) {
	defer func() {
		recoveredErr := HandleLoadPanicRecover(recover())
		if recoveredErr != nil {
			scene = nil
			err = recoveredErr
		}
	}()

	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	scene = &Scene{}
	scene.addSVGElement(root)
	return scene, nil
}

func (s *Scene) addSVGElement(el *svgparser.Element) {
	switch el.Name {
	case "polygon":
		points := parseSVGPoints(el)
		if len(points) < 3 {
			fatalf("polygon needs at least 3 points, got %d", len(points))
		}
		s.Polygons = append(s.Polygons, advanced.Polygon{Points: closeRing(points)})
	case "polyline":
		points := parseSVGPoints(el)
		if len(points) < 2 {
			fatalf("polyline needs at least 2 points, got %d", len(points))
		}
		s.Chains = append(s.Chains, advanced.Polygon{Points: points})
	case "line":
		s.Segments = append(s.Segments, advanced.Segment{
			Start: advanced.Pt(svgLength(el, "x1", false), svgLength(el, "y1", false)),
			End:   advanced.Pt(svgLength(el, "x2", false), svgLength(el, "y2", false)),
		})
	case "circle":
		s.Circles = append(s.Circles, advanced.Circle{
			Center: advanced.Pt(svgLength(el, "cx", false), svgLength(el, "cy", false)),
			Radius: svgLength(el, "r", true),
		})
	case "ellipse":
		s.Ellipses = append(s.Ellipses, advanced.Ellipse{
			Center:    advanced.Pt(svgLength(el, "cx", false), svgLength(el, "cy", false)),
			SemiMajor: svgLength(el, "rx", true),
			SemiMinor: svgLength(el, "ry", true),
		})
	case "rect":
		x, y := svgLength(el, "x", false), svgLength(el, "y", false)
		s.Rects = append(s.Rects, advanced.Rect{
			Min: advanced.Pt(x, y),
			Max: advanced.Pt(x+svgLength(el, "width", true), y+svgLength(el, "height", true)),
		})
	}

	for _, child := range el.Children {
		s.addSVGElement(child)
	}
}

// Missing optional attributes default to zero, as in SVG.
func svgLength(el *svgparser.Element, name string, required bool) float64 {
	raw, ok := el.Attributes[name]
	if !ok {
		if required {
			fatalf("<%s> is missing %q", el.Name, name)
		}
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), "px"), 64)
	if err != nil {
		fatalf("<%s> has invalid %s %q", el.Name, name, raw)
	}
	return v
}

// The points attribute is a list of numbers separated by whitespace and/or
// commas, taken in pairs.
func parseSVGPoints(el *svgparser.Element) []advanced.Point {
	fields := strings.FieldsFunc(el.Attributes["points"], func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		fatalf("<%s> has an odd number of coordinates", el.Name)
	}
	points := make([]advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			fatalf("<%s> has invalid x value %q", el.Name, fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			fatalf("<%s> has invalid y value %q", el.Name, fields[i+1])
		}
		points = append(points, advanced.Pt(x, y))
	}
	return points
}
