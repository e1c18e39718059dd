// Package fixtures holds shared test shapes: polygons embedded as SVG files
// in svg/, and a few shapes built in code.
package fixtures

import (
	"embed"
	"math"
	"sort"
	"strings"

	"github.com/osuushi/planar/advanced"
	"github.com/osuushi/planar/shapeio"
	"github.com/sirupsen/logrus"
)

// Fixtures are available by name in the svg/ directory, sans extension.
//
//go:embed svg
var svgFixtures embed.FS

// Names lists the embedded fixtures.
func Names() []string {
	entries, err := svgFixtures.ReadDir("svg")
	if err != nil {
		logrus.Fatalf("Could not list fixtures: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
	}
	sort.Strings(names)
	return names
}

// Load parses the single polygon in the named fixture and returns it closed
// and wound clockwise in a y-up frame, which is the winding side based
// containment expects. Fixtures are fixed input, so any failure is fatal.
func Load(name string) advanced.Polygon {
	fixture, err := svgFixtures.Open("svg/" + name + ".svg")
	if err != nil {
		logrus.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	scene, err := shapeio.ParseSVG(fixture)
	if err != nil {
		logrus.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(scene.Polygons) != 1 {
		logrus.Fatalf("Expected one polygon in fixture %q, found %d", name, len(scene.Polygons))
	}
	return clockwise(scene.Polygons[0])
}

func clockwise(poly advanced.Polygon) advanced.Polygon {
	if !poly.IsClockwise() {
		return poly.Reverse()
	}
	return poly
}

func Square() advanced.Polygon {
	return advanced.Polygon{Points: []advanced.Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}}
}

func Diamond() advanced.Polygon {
	return advanced.Polygon{Points: []advanced.Point{{0, 2}, {2, 0}, {0, -2}, {-2, 0}, {0, 2}}}
}

// Some ad hoc code specified fixtures

func SimpleStar() advanced.Polygon {
	var points []advanced.Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, advanced.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return clockwise(advanced.Polygon{Points: append(points, points[0])})
}

// SquareWithHole is an outer square and a hole, with opposite windings. Under
// the even-odd rule a point is in the shape iff it is in exactly one of them.
func SquareWithHole() []advanced.Polygon {
	outer := advanced.Polygon{Points: []advanced.Point{
		{X: -5, Y: -5},
		{X: 5, Y: -5},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
		{X: -5, Y: -5},
	}}
	hole := advanced.Polygon{Points: []advanced.Point{
		{X: -2, Y: -2},
		{X: -2, Y: 2},
		{X: 2, Y: 2},
		{X: 2, Y: -2},
		{X: -2, Y: -2},
	}}
	return []advanced.Polygon{outer, hole}
}

// All returns every single polygon fixture, embedded and code built, by name.
func All() map[string]advanced.Polygon {
	all := map[string]advanced.Polygon{
		"square":      Square(),
		"diamond":     Diamond(),
		"simple-star": SimpleStar(),
	}
	for _, name := range Names() {
		all[name] = Load(name)
	}
	return all
}
