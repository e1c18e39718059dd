package advanced

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPointInDelta(t *testing.T, expected, actual Point, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
}

func TestClosestPointOnLine(t *testing.T) {
	line := Line{Pt(0, 0), Pt(10, 0)}
	assertPointInDelta(t, Pt(5, 0), ClosestPointOnLine(Pt(5, 5), line), 1e-12)
	assertPointInDelta(t, Pt(-4, 0), ClosestPointOnLine(Pt(-4, 2), line), 1e-12)
	assertPointInDelta(t, Pt(1, 1), ClosestPointOnLine(Pt(0, 2), Line{Pt(0, 0), Pt(2, 2)}), 1e-12)
	assert.True(t, ClosestPointOnLine(Pt(1, 1), Line{Pt(3, 3), Pt(3, 3)}).IsNaN())
}

func TestClosestPointOnSegment(t *testing.T) {
	start, end := Pt(0, 0), Pt(10, 0)
	assert.Equal(t, end, ClosestPointOnSegment(Pt(13, 4), start, end))
	assert.Equal(t, start, ClosestPointOnSegment(Pt(-3, 4), start, end))
	assertPointInDelta(t, Pt(5, 0), ClosestPointOnSegment(Pt(5, 5), start, end), 1e-12)
	assert.Equal(t, Pt(1, 1), ClosestPointOnSegment(Pt(4, 5), Pt(1, 1), Pt(1, 1)))

	t.Run("witness agrees with distance", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 200; i++ {
			p, a, b := randomPoint(rng), randomPoint(rng), randomPoint(rng)
			witness := ClosestPointOnSegment(p, a, b)
			assert.InDelta(t, DistanceToSegment(p, a, b), Distance(p, witness), 1e-9)
			assert.True(t, DefaultTolerance.Zero(DistanceToSegment(witness, a, b)))
		}
	})
}

func TestClosestPointOnEdges(t *testing.T) {
	assert.True(t, ClosestPointOnEdges(Pt(1, 1), nil).IsNaN())
	assert.Equal(t, Pt(2, 2), ClosestPointOnEdges(Pt(1, 1), []Point{{2, 2}}))

	sq := square().Points
	assertPointInDelta(t, Pt(0, 5), ClosestPointOnEdges(Pt(1, 5), sq), 1e-12)
	assertPointInDelta(t, Pt(10, 3), ClosestPointOnEdges(Pt(12, 3), sq), 1e-12)

	// (5, 5) is equally far from all four sides; the first edge wins
	assertPointInDelta(t, Pt(0, 5), ClosestPointOnEdges(Pt(5, 5), sq), 1e-12)
}

func TestClosestPointOnShapes(t *testing.T) {
	t.Run("rect witness is on the boundary", func(t *testing.T) {
		r := Rect{Pt(0, 0), Pt(4, 2)}
		witness := ClosestPointOnRect(Pt(2, 1.5), r)
		assertPointInDelta(t, Pt(2, 2), witness, 1e-12)
		assert.Equal(t, OnEdge, DefaultTolerance.RectContainment(witness, r))
	})

	t.Run("triangle", func(t *testing.T) {
		tri := Triangle{Pt(0, 0), Pt(0, 10), Pt(10, 0)}
		assertPointInDelta(t, Pt(5, 5), ClosestPointOnTriangle(Pt(10, 10), tri), 1e-12)
		assertPointInDelta(t, Pt(0, 3), ClosestPointOnTriangle(Pt(-2, 3), tri), 1e-12)
	})

	t.Run("circle", func(t *testing.T) {
		c := Circle{Pt(1, 1), 5}
		assertPointInDelta(t, Pt(4, 5), ClosestPointOnCircle(Pt(7, 9), c), 1e-12)
		assertPointInDelta(t, Pt(4, 5), ClosestPointOnCircle(Pt(1.6, 1.8), c), 1e-12)
		assert.Equal(t, Pt(6, 1), ClosestPointOnCircle(c.Center, c))
	})
}

func TestClosestPointOnEllipse(t *testing.T) {
	e := Ellipse{Pt(0, 0), 4, 2}
	cases := []struct {
		name     string
		p        Point
		expected Point
		delta    float64
	}{
		{"on major axis", Pt(10, 0), Pt(4, 0), 1e-9},
		{"on minor axis", Pt(0, 10), Pt(0, 2), 1e-6},
		{"mirrored major axis", Pt(-10, 0), Pt(-4, 0), 1e-9},
		{"mirrored minor axis", Pt(0, -7), Pt(0, -2), 1e-6},
		{"inside on minor axis", Pt(0, 1.5), Pt(0, 2), 1e-6},
		// Reference value found by brute force over the parametric angle
		{"generic quadrant", Pt(6, 3), Pt(3.63627, 0.83330), 1e-4},
		{"generic quadrant mirrored", Pt(-6, -3), Pt(-3.63627, -0.83330), 1e-4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := ClosestPointOnEllipse(c.p, e)
			assertPointInDelta(t, c.expected, actual, c.delta)
			assert.Equal(t, OnEdge, DefaultTolerance.EllipseContainment(actual, e))
		})
	}

	t.Run("circle as ellipse", func(t *testing.T) {
		actual := ClosestPointOnEllipse(Pt(7, 9), Ellipse{Pt(1, 1), 5, 5})
		assertPointInDelta(t, Pt(4, 5), actual, 1e-9)
	})

	t.Run("boundary points are fixed", func(t *testing.T) {
		on := Pt(4*math.Cos(0.6), 2*math.Sin(0.6))
		assertPointInDelta(t, on, ClosestPointOnEllipse(on, e), 1e-9)
	})

	t.Run("translated", func(t *testing.T) {
		moved := Ellipse{Pt(3, -2), 4, 2}
		actual := ClosestPointOnEllipse(Pt(9, 1), moved)
		assertPointInDelta(t, Pt(6.63627, -1.16670), actual, 1e-4)
	})

	t.Run("invalid ellipse", func(t *testing.T) {
		require.True(t, ClosestPointOnEllipse(Pt(1, 1), Ellipse{Pt(0, 0), 4, 0}).IsNaN())
		require.True(t, ClosestPointOnEllipse(Pt(1, 1), Ellipse{Pt(0, 0), math.Inf(1), 2}).IsNaN())
	})
}
