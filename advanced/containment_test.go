package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangleContainment(t *testing.T) {
	// Clockwise in a y-up frame, so the interior is on the right of every edge
	tri := Triangle{Pt(0, 0), Pt(0, 10), Pt(10, 0)}
	cases := []struct {
		name     string
		p        Point
		expected Containment
	}{
		{"interior", Pt(2, 2), Inside},
		{"on an edge", Pt(0, 5), OnEdge},
		{"on the hypotenuse", Pt(5, 5), OnEdge},
		{"on a vertex", Pt(10, 0), OnEdge},
		{"beyond a vertex on an edge's line", Pt(0, 15), Outside},
		{"far away", Pt(20, 20), Outside},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, DefaultTolerance.TriangleContainment(c.p, tri))
		})
	}

	t.Run("near an obtuse vertex of a short edge", func(t *testing.T) {
		// The point is inside, but within the collinear band of the short edge
		// AB past its end, so it is never strictly Left of any edge.
		obtuse := Triangle{Pt(0, 0), Pt(0.01, 0), Pt(10, -5)}
		p := Pt(0.02, -0.007)
		require.Equal(t, Beyond, DefaultTolerance.LocationOf(p, obtuse.A, obtuse.B))
		require.Equal(t, Inside, DefaultTolerance.PolygonContainment(p, Polygon{obtuse.Closed()}))
		assert.Equal(t, OnEdge, DefaultTolerance.TriangleContainment(p, obtuse))
		assert.Equal(t, Inside, DefaultTolerance.TriangleContainment(Pt(5, -2.49875), obtuse))
	})

	t.Run("winding matters", func(t *testing.T) {
		reversed := Triangle{tri.A, tri.C, tri.B}
		assert.Equal(t, Outside, DefaultTolerance.TriangleContainment(Pt(2, 2), reversed))
	})

	t.Run("collinear triangle", func(t *testing.T) {
		flat := Triangle{Pt(0, 0), Pt(5, 0), Pt(10, 0)}
		assert.Equal(t, Outside, DefaultTolerance.TriangleContainment(Pt(3, 1), flat))
		assert.Equal(t, OnEdge, DefaultTolerance.TriangleContainment(Pt(3, 0), flat))
		assert.Equal(t, Outside, DefaultTolerance.TriangleContainment(Pt(12, 0), flat))
	})

	t.Run("point triangle", func(t *testing.T) {
		dot := Triangle{Pt(1, 1), Pt(1, 1), Pt(1, 1)}
		assert.Equal(t, OnEdge, DefaultTolerance.TriangleContainment(Pt(1, 1), dot))
		assert.Equal(t, Outside, DefaultTolerance.TriangleContainment(Pt(2, 1), dot))
	})
}

func TestRectContainment(t *testing.T) {
	r := Rect{Pt(0, 0), Pt(4, 2)}
	for _, rect := range []Rect{r, {Pt(4, 2), Pt(0, 0)}, {Pt(0, 2), Pt(4, 0)}} {
		assert.Equal(t, Inside, DefaultTolerance.RectContainment(Pt(2, 1), rect))
		assert.Equal(t, OnEdge, DefaultTolerance.RectContainment(Pt(4, 1), rect))
		assert.Equal(t, OnEdge, DefaultTolerance.RectContainment(Pt(0, 0), rect))
		assert.Equal(t, Outside, DefaultTolerance.RectContainment(Pt(5, 1), rect))
		assert.Equal(t, Outside, DefaultTolerance.RectContainment(Pt(2, -0.5), rect))
	}
}

func TestConvexContainment(t *testing.T) {
	t.Run("square matches polygon containment", func(t *testing.T) {
		sq := square()
		for _, p := range []Point{{5, 5}, {0, 5}, {15, 5}, {10, 10}, {-1, -1}, {9.99, 0.01}} {
			assert.Equal(t,
				DefaultTolerance.PolygonContainment(p, sq),
				DefaultTolerance.ConvexContainment(p, sq.Points),
				"point %v", p,
			)
		}
	})

	t.Run("repeated vertices are skipped", func(t *testing.T) {
		boundary := []Point{{0, 0}, {0, 0}, {0, 10}, {10, 10}, {10, 10}, {10, 0}, {0, 0}}
		assert.Equal(t, Inside, DefaultTolerance.ConvexContainment(Pt(5, 5), boundary))
	})

	t.Run("empty boundary", func(t *testing.T) {
		assert.Equal(t, Outside, DefaultTolerance.ConvexContainment(Pt(0, 0), nil))
	})
}

func TestCircleContainment(t *testing.T) {
	c := Circle{Pt(0, 0), 3}
	assert.Equal(t, Inside, DefaultTolerance.CircleContainment(Pt(1, 1), c))
	assert.Equal(t, OnEdge, DefaultTolerance.CircleContainment(Pt(3, 0), c))
	assert.Equal(t, OnEdge, DefaultTolerance.CircleContainment(Pt(0, -3), c))
	assert.Equal(t, Outside, DefaultTolerance.CircleContainment(Pt(4, 0), c))

	t.Run("zero radius", func(t *testing.T) {
		dot := Circle{Pt(2, 2), 0}
		assert.Equal(t, OnEdge, DefaultTolerance.CircleContainment(Pt(2, 2), dot))
		assert.Equal(t, Outside, DefaultTolerance.CircleContainment(Pt(3, 2), dot))
	})

	t.Run("invalid radius", func(t *testing.T) {
		assert.Equal(t, Outside, DefaultTolerance.CircleContainment(Pt(0, 0), Circle{Pt(0, 0), -1}))
		assert.Equal(t, Outside, DefaultTolerance.CircleContainment(Pt(0, 0), Circle{Pt(0, 0), math.NaN()}))
	})
}

func TestEllipseContainment(t *testing.T) {
	e := Ellipse{Pt(1, 1), 4, 2}
	assert.Equal(t, Inside, DefaultTolerance.EllipseContainment(Pt(1, 1), e))
	assert.Equal(t, Inside, DefaultTolerance.EllipseContainment(Pt(4, 1), e))
	assert.Equal(t, OnEdge, DefaultTolerance.EllipseContainment(Pt(5, 1), e))
	assert.Equal(t, OnEdge, DefaultTolerance.EllipseContainment(Pt(1, 3), e))
	assert.Equal(t, Outside, DefaultTolerance.EllipseContainment(Pt(1, 3.5), e))
	assert.Equal(t, Outside, DefaultTolerance.EllipseContainment(Pt(5, 3), e))
	assert.Equal(t, Outside, DefaultTolerance.EllipseContainment(Pt(1, 1), Ellipse{Pt(1, 1), 0, 2}))
}
