package advanced

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	tol := DefaultTolerance

	values, err := tol.Steps(0, 1, 0.3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.3, 0.6, 0.9, 1}, values, 1e-12)

	t.Run("exact multiple does not repeat the end", func(t *testing.T) {
		values, err := tol.Steps(0, 1, 0.25)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, values, 1e-12)
	})

	t.Run("accumulated rounding does not add a sliver", func(t *testing.T) {
		values, err := tol.Steps(0, 1, 0.1)
		require.NoError(t, err)
		assert.Len(t, values, 11)
		assert.Equal(t, 1.0, values[len(values)-1])
	})

	t.Run("empty range", func(t *testing.T) {
		values, err := tol.Steps(2, 2, 0.5)
		require.NoError(t, err)
		assert.Equal(t, []float64{2}, values)
	})

	t.Run("step larger than the range", func(t *testing.T) {
		values, err := tol.Steps(-1, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, []float64{-1, 1}, values)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		cases := []struct {
			name             string
			start, end, step float64
		}{
			{"reversed", 1, 0, 0.1},
			{"zero step", 0, 1, 0},
			{"negative step", 0, 1, -0.1},
			{"nan step", 0, 1, math.NaN()},
			{"infinite end", 0, math.Inf(1), 1},
			{"nan start", math.NaN(), 1, 1},
			{"tiny step", 0, 1, 1e-300},
			{"too many samples", 0, 1, 1.0 / (2 * MaxSteps)},
			{"span overflows", -math.MaxFloat64, math.MaxFloat64, 1},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := tol.Steps(c.start, c.end, c.step)
				require.Error(t, err)
				assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
			})
		}
	})
}

func TestGridSteps(t *testing.T) {
	grid, err := DefaultTolerance.GridSteps(Pt(0, 0), Pt(1, 2), 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
		{0, 2}, {1, 2},
	}, grid)

	_, err = DefaultTolerance.GridSteps(Pt(0, 3), Pt(1, 2), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "y axis")
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))

	// Each axis is fine on its own, but the lattice is not.
	_, err = DefaultTolerance.GridSteps(Pt(0, 0), Pt(10000, 10000), 1)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
}
