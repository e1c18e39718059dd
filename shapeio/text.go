package shapeio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/planar/advanced"
	"github.com/pkg/errors"
)

// ParseText reads newline separated points in the form "x y" (a comma works
// as well), with groups separated by a blank line. A group of one point is a
// point, two points a segment, and three or more a polygon, which is closed
// if the closing vertex is missing. Lines starting with '#' are comments.
func ParseText(r io.Reader) (scene *Scene, err error) {
	defer func() {
		recoveredErr := HandleLoadPanicRecover(recover())
		if recoveredErr != nil {
			scene = nil
			err = recoveredErr
		}
	}()

	scene = &Scene{}
	scanner := bufio.NewScanner(r)
	var points []advanced.Point
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the group
		if line == "" {
			scene.addGroup(points)
			points = nil
			continue
		}

		points = append(points, parseTextPoint(line, lineNumber))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing group if any
	scene.addGroup(points)
	return scene, nil
}

func (s *Scene) addGroup(points []advanced.Point) {
	switch len(points) {
	case 0:
	case 1:
		s.Points = append(s.Points, points[0])
	case 2:
		s.Segments = append(s.Segments, advanced.Segment{Start: points[0], End: points[1]})
	default:
		s.Polygons = append(s.Polygons, advanced.Polygon{Points: closeRing(points)})
	}
}

func parseTextPoint(line string, lineNumber int) advanced.Point {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		fatalf("line %d: expected \"x y\", got %q", lineNumber, line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		fatalf("line %d: invalid x value %q", lineNumber, parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		fatalf("line %d: invalid y value %q", lineNumber, parts[1])
	}
	return advanced.Pt(x, y)
}
