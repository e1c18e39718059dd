package dbg

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/planar/advanced"
	"github.com/osuushi/planar/shapeio"
	"github.com/pkg/errors"
)

const (
	DefaultScale   = 20
	DefaultPadding = 20

	// Refuse to allocate absurd canvases for scenes with huge coordinates.
	maxDrawSize = 1 << 13
)

// Options controls Draw. Zero values pick the defaults.
type Options struct {
	Scale   float64 // pixels per unit
	Padding float64 // pixels around the scene
	// Marks are query points, drawn as red dots on top of the scene.
	Marks []advanced.Point
}

// Draw renders the scene with the origin at the bottom left. Closed shapes
// are filled with the even-odd rule and outlined, open shapes are stroked,
// and points are dots.
func Draw(scene *shapeio.Scene, opts Options) (*gg.Context, error) {
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}
	if opts.Padding <= 0 {
		opts.Padding = DefaultPadding
	}

	bounds := scene.Bounds()
	for _, m := range opts.Marks {
		bounds = bounds.AddPoint(r2.Point{X: m.X, Y: m.Y})
	}
	if bounds.IsEmpty() {
		return nil, errors.New("nothing to draw")
	}

	size := bounds.Size()
	width := int(math.Ceil(opts.Scale*size.X + 2*opts.Padding))
	height := int(math.Ceil(opts.Scale*size.Y + 2*opts.Padding))
	if width > maxDrawSize || height > maxDrawSize {
		return nil, errors.Errorf("scene is too large to draw at scale %v (%dx%d)", opts.Scale, width, height)
	}

	// Set up the context
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(opts.Padding, opts.Padding)
	// Scale
	c.Scale(opts.Scale, opts.Scale)
	// Translate to min
	lo := bounds.Lo()
	c.Translate(-lo.X, -lo.Y)

	c.SetLineWidth(2)
	for _, poly := range scene.Polygons {
		tracePath(c, poly.Points)
		c.ClosePath()
	}
	for _, r := range scene.Rects {
		tracePath(c, r.Corners())
		c.ClosePath()
	}
	for _, circle := range scene.Circles {
		c.NewSubPath()
		c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
	}
	for _, e := range scene.Ellipses {
		c.NewSubPath()
		c.DrawEllipse(e.Center.X, e.Center.Y, e.SemiMajor, e.SemiMinor)
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, chain := range scene.Chains {
		tracePath(c, chain.Points)
	}
	for _, seg := range scene.Segments {
		tracePath(c, []advanced.Point{seg.Start, seg.End})
	}
	c.SetRGB(1, 1, 0)
	c.Stroke()

	dot := 3 / opts.Scale
	for _, p := range scene.Points {
		c.DrawCircle(p.X, p.Y, dot)
	}
	c.SetRGB(1, 1, 1)
	c.Fill()
	for _, m := range opts.Marks {
		c.DrawCircle(m.X, m.Y, dot)
	}
	c.SetRGB(1, 0, 0)
	c.Fill()

	return c, nil
}

func tracePath(c *gg.Context, points []advanced.Point) {
	if len(points) == 0 {
		return
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
}

// SavePNG draws the scene and writes it to path.
func SavePNG(scene *shapeio.Scene, opts Options, path string) error {
	c, err := Draw(scene, opts)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Show prints a PNG file inline, for terminals that speak the iTerm image
// protocol.
func Show(path string, w io.Writer) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "showing image")
	}
	imgcat.CatFile(path, w)
	return nil
}
