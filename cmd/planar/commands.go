package main

import (
	"fmt"

	"github.com/osuushi/planar/advanced"
	"github.com/osuushi/planar/dbg"
	"github.com/osuushi/planar/shapeio"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func registerLocate(app *kingpin.Application, commands map[string]func(*env) error) {
	cmd := app.Command("locate", "Classify a point against every shape in the scene.")
	var at pointValue
	cmd.Flag("at", "Query point, X,Y.").Required().SetValue(&at)
	file := cmd.Arg("file", "Scene file. Reads stdin when absent.").String()

	commands[cmd.FullCommand()] = func(e *env) error {
		scene, err := e.loadScene(*file)
		if err != nil {
			return err
		}
		locate(e, scene, advanced.Point(at))
		return nil
	}
}

func locate(e *env, scene *shapeio.Scene, p advanced.Point) {
	report := func(kind string, i int, shape interface{}, c advanced.Containment) {
		if e.logger.IsLevelEnabled(logrus.DebugLevel) {
			e.logger.WithField("name", dbg.Name(shape)).Debugf("%s %d is %v", kind, i, c)
		}
		fmt.Fprintf(e.stdout, "%s %d: %s\n", kind, i, e.containment(c))
	}
	for i, seg := range scene.Segments {
		loc := e.tol.LocationOf(p, seg.Start, seg.End)
		fmt.Fprintf(e.stdout, "segment %d: %s\n", i, e.au.Cyan(loc))
	}
	for i, poly := range scene.Polygons {
		report("polygon", i, &scene.Polygons[i], e.tol.PolygonContainment(p, poly))
	}
	for i, r := range scene.Rects {
		report("rect", i, r, e.tol.RectContainment(p, r))
	}
	for i, c := range scene.Circles {
		report("circle", i, c, e.tol.CircleContainment(p, c))
	}
	for i, el := range scene.Ellipses {
		report("ellipse", i, el, e.tol.EllipseContainment(p, el))
	}
}

func (e *env) containment(c advanced.Containment) string {
	switch c {
	case advanced.Inside:
		return e.au.Green(c).String()
	case advanced.OnEdge:
		return e.au.Yellow(c).String()
	}
	return e.au.Red(c).String()
}

func registerDistance(app *kingpin.Application, commands map[string]func(*env) error) {
	cmd := app.Command("distance", "Distance and closest point from a point to every shape in the scene.")
	var at pointValue
	cmd.Flag("at", "Query point, X,Y.").Required().SetValue(&at)
	file := cmd.Arg("file", "Scene file. Reads stdin when absent.").String()

	commands[cmd.FullCommand()] = func(e *env) error {
		scene, err := e.loadScene(*file)
		if err != nil {
			return err
		}
		return distance(e, scene, advanced.Point(at))
	}
}

func distance(e *env, scene *shapeio.Scene, p advanced.Point) error {
	report := func(kind string, i int, d float64, closest advanced.Point) error {
		wkt, err := shapeio.PointWKT(closest)
		if err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "%s %d: %s %s\n", kind, i, e.au.Bold(formatFloat(d)), wkt)
		return nil
	}

	for i, q := range scene.Points {
		if err := report("point", i, advanced.Distance(p, q), q); err != nil {
			return err
		}
	}
	for i, s := range scene.Segments {
		if err := report("segment", i, advanced.DistanceToSegment(p, s.Start, s.End), advanced.ClosestPointOnSegment(p, s.Start, s.End)); err != nil {
			return err
		}
	}
	for i, chain := range scene.Chains {
		if err := report("chain", i, advanced.DistanceToEdges(p, chain.Points), advanced.ClosestPointOnEdges(p, chain.Points)); err != nil {
			return err
		}
	}
	for i, poly := range scene.Polygons {
		if err := report("polygon", i, advanced.DistanceToEdges(p, poly.Points), advanced.ClosestPointOnEdges(p, poly.Points)); err != nil {
			return err
		}
	}
	for i, r := range scene.Rects {
		if err := report("rect", i, advanced.DistanceToRect(p, r), advanced.ClosestPointOnRect(p, r)); err != nil {
			return err
		}
	}
	for i, c := range scene.Circles {
		if err := report("circle", i, advanced.DistanceToCircle(p, c), advanced.ClosestPointOnCircle(p, c)); err != nil {
			return err
		}
	}
	for i, el := range scene.Ellipses {
		if err := report("ellipse", i, advanced.DistanceToEllipse(p, el), advanced.ClosestPointOnEllipse(p, el)); err != nil {
			return err
		}
	}
	return nil
}

func registerIntersect(app *kingpin.Application, commands map[string]func(*env) error) {
	cmd := app.Command("intersect", "Intersections between the edges of different shapes, and between edges and circles.")
	file := cmd.Arg("file", "Scene file. Reads stdin when absent.").String()

	commands[cmd.FullCommand()] = func(e *env) error {
		scene, err := e.loadScene(*file)
		if err != nil {
			return err
		}
		return intersect(e, scene)
	}
}

// An edge and the label of the shape it belongs to.
type ownedEdge struct {
	owner string
	edge  advanced.Segment
}

func sceneEdges(scene *shapeio.Scene) []ownedEdge {
	var edges []ownedEdge
	add := func(owner string, segments []advanced.Segment) {
		for _, s := range segments {
			edges = append(edges, ownedEdge{owner, s})
		}
	}
	for i, s := range scene.Segments {
		add(fmt.Sprintf("segment %d", i), []advanced.Segment{s})
	}
	for i, chain := range scene.Chains {
		add(fmt.Sprintf("chain %d", i), chain.Edges())
	}
	for i, poly := range scene.Polygons {
		add(fmt.Sprintf("polygon %d", i), poly.Edges())
	}
	for i, r := range scene.Rects {
		add(fmt.Sprintf("rect %d", i), advanced.Polygon{Points: r.Corners()}.Edges())
	}
	return edges
}

// intersect prints each intersection point once per pair of shapes, so a
// crossing through a shared vertex of two edges is not repeated.
func intersect(e *env, scene *shapeio.Scene) error {
	type pair struct{ a, b string }
	var order []pair
	found := map[pair][]advanced.Point{}
	record := func(key pair, p advanced.Point) {
		points, seen := found[key]
		if !seen {
			order = append(order, key)
		}
		for _, q := range points {
			if e.tol.PointsEqual(p, q) {
				return
			}
		}
		found[key] = append(points, p)
	}

	edges := sceneEdges(scene)
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if edges[i].owner == edges[j].owner {
				continue
			}
			if p, ok := e.tol.SegmentIntersect(edges[i].edge, edges[j].edge); ok {
				record(pair{edges[i].owner, edges[j].owner}, p)
			}
		}
	}
	for ci, c := range scene.Circles {
		owner := fmt.Sprintf("circle %d", ci)
		for _, edge := range edges {
			p1, p2, count := e.tol.SegmentCircleIntersect(edge.edge, c)
			if count > 0 {
				record(pair{edge.owner, owner}, p1)
			}
			if count > 1 {
				record(pair{edge.owner, owner}, p2)
			}
		}
	}

	for _, key := range order {
		for _, p := range found[key] {
			wkt, err := shapeio.PointWKT(p)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.stdout, "%s / %s: %s\n", e.au.Cyan(key.a), e.au.Cyan(key.b), wkt)
		}
	}
	return nil
}

func registerSteps(app *kingpin.Application, commands map[string]func(*env) error) {
	cmd := app.Command("steps", "Sample the rectangle between two corners on a regular grid.")
	var from, to pointValue
	cmd.Flag("from", "Lower left corner, X,Y.").Required().SetValue(&from)
	cmd.Flag("to", "Upper right corner, X,Y.").Required().SetValue(&to)
	step := cmd.Flag("step", "Grid spacing.").Required().Float64()

	commands[cmd.FullCommand()] = func(e *env) error {
		points, err := e.tol.GridSteps(advanced.Point(from), advanced.Point(to), *step)
		if err != nil {
			return err
		}
		for _, p := range points {
			fmt.Fprintf(e.stdout, "%s %s\n", formatFloat(p.X), formatFloat(p.Y))
		}
		return nil
	}
}

func registerDraw(app *kingpin.Application, commands map[string]func(*env) error) {
	cmd := app.Command("draw", "Render the scene to a PNG.")
	file := cmd.Arg("file", "Scene file. Reads stdin when absent.").String()
	out := cmd.Flag("out", "PNG file to write.").Short('o').Required().String()
	show := cmd.Flag("show", "Print the image inline (iTerm image protocol).").Bool()
	scale := cmd.Flag("scale", "Pixels per unit, overriding the configuration.").Float64()
	var marks pointsValue
	cmd.Flag("at", "Point to mark, X,Y. Repeatable.").SetValue(&marks)

	commands[cmd.FullCommand()] = func(e *env) error {
		scene, err := e.loadScene(*file)
		if err != nil {
			return err
		}
		opts := dbg.Options{
			Scale:   e.cfg.Scale,
			Padding: e.cfg.Padding,
			Marks:   marks,
		}
		if *scale > 0 {
			opts.Scale = *scale
		}
		if err := dbg.SavePNG(scene, opts, *out); err != nil {
			return err
		}
		e.logger.WithField("path", *out).Info("wrote image")
		if *show {
			return dbg.Show(*out, e.stdout)
		}
		return nil
	}
}
