package fixtures

import (
	"math"
	"testing"

	"github.com/osuushi/planar/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"arrow", "comb", "spiral", "stairs"}, Names())
}

func TestLoadedFixturesAreClosedAndClockwise(t *testing.T) {
	for name, poly := range All() {
		t.Run(name, func(t *testing.T) {
			require.GreaterOrEqual(t, len(poly.Points), 4)
			assert.Equal(t, poly.Points[0], poly.Points[len(poly.Points)-1])
			assert.True(t, poly.IsClockwise())
		})
	}
}

func TestFixtureAreas(t *testing.T) {
	assert.InDelta(t, 22, math.Abs(Load("comb").SignedArea()), advanced.Epsilon)
	assert.InDelta(t, 12, math.Abs(Load("arrow").SignedArea()), advanced.Epsilon)
	assert.InDelta(t, 10, math.Abs(Load("stairs").SignedArea()), advanced.Epsilon)
}
