package advanced

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestTriangleSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI // import into inner scope
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			tri := Triangle{
				A: Point{0, -1},
				B: Point{1, 0},
				C: Point{0, 1},
			}
			// Clockwise triangles will have negative area, so sign is -1 for CW = 1
			sign := 1 - 2*float64(cwI)
			assertArea := func(expected float64) {
				assert.InDelta(t, sign*expected, tri.SignedArea(), Epsilon)
				// The polygon version must agree with the triangle version
				assert.InDelta(t, sign*expected, Polygon{tri.Closed()}.SignedArea(), Epsilon)
			}
			if cwI == 1 {
				tri.A, tri.B = tri.B, tri.A
			}
			assertArea(1)
			// Stretch the triangle out
			tri.A.Y *= 2
			tri.B.Y *= 2
			tri.C.Y *= 2
			assertArea(2)

			// Rotate the triangle repeatedly by a weird angle
			angle := math.Pi / 7
			for i := 0; i < 14; i++ {
				tri = rotateTriangle(tri, angle)
				assertArea(2)
			}

			// Translate the triangle and do the whole rotation thing again
			offset := Point{5, 3}
			tri = Triangle{tri.A.Add(offset), tri.B.Add(offset), tri.C.Add(offset)}

			for i := 0; i < 14; i++ {
				tri = rotateTriangle(tri, angle)
				assertArea(2)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-1, 0, 1))
	assert.Equal(t, 0.5, clamp(0.5, 0, 1))
	assert.Equal(t, 1.0, clamp(3, 0, 1))
}

// Helpers

func rotatePoint(point Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: point.X*cos - point.Y*sin,
		Y: point.X*sin + point.Y*cos,
	}
}

func rotateTriangle(tri Triangle, angle float64) Triangle {
	return Triangle{rotatePoint(tri.A, angle), rotatePoint(tri.B, angle), rotatePoint(tri.C, angle)}
}

// Square from the reference scenario, closing vertex repeated.
func square() Polygon {
	return Polygon{[]Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}}
}

// Two towers joined at the bottom, with horizontal edges at y=2 and y=4 that
// line up with several vertices at once:
//
//	 ___     ___
//	|   |___|   |
//	|           |
//	|___________|
func castle() Polygon {
	return Polygon{[]Point{
		{0, 0}, {0, 4}, {2, 4}, {2, 2}, {4, 2}, {4, 4}, {6, 4}, {6, 0}, {0, 0},
	}}
}
