package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// MaxSteps bounds the number of samples Steps produces per axis.
const MaxSteps = 1 << 24

// Steps samples [start, end] at the given spacing. Both ends are always
// included; the last sample is clamped to end, so the final gap may be
// shorter than step.
//
// Ordered input is a precondition. A start greater than end, or a step that
// is not positive, is reported as an error whose cause is ErrInvalidArgument.
// So is a step too small to sample the range in MaxSteps samples.
func (tol Tolerance) Steps(start, end, step float64) ([]float64, error) {
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return nil, errors.Wrapf(ErrInvalidArgument, "steps need finite bounds, got %v and %v", start, end)
	}
	if start > end {
		return nil, errors.Wrapf(ErrInvalidArgument, "start %v is greater than end %v", start, end)
	}
	if !isPositiveFinite(step) {
		return nil, errors.Wrapf(ErrInvalidArgument, "step must be positive, got %v", step)
	}

	count := (end-start)/step + 2
	if math.IsInf(count, 0) || count > MaxSteps {
		return nil, errors.Wrapf(ErrInvalidArgument, "step %v over [%v, %v] gives more than %d samples", step, start, end, MaxSteps)
	}

	values := make([]float64, 0, int(count))
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > end || tol.Equal(v, end) {
			break
		}
		values = append(values, v)
	}
	return append(values, end), nil
}

// GridSteps samples the rectangle spanned by min and max row by row, bottom
// row first. The precondition from Steps applies per axis, and the whole grid
// is held to MaxSteps points.
func (tol Tolerance) GridSteps(min, max Point, step float64) ([]Point, error) {
	xs, err := tol.Steps(min.X, max.X, step)
	if err != nil {
		return nil, errors.Wrap(err, "x axis")
	}
	ys, err := tol.Steps(min.Y, max.Y, step)
	if err != nil {
		return nil, errors.Wrap(err, "y axis")
	}
	if len(xs)*len(ys) > MaxSteps {
		return nil, errors.Wrapf(ErrInvalidArgument, "a %dx%d grid has more than %d points", len(xs), len(ys), MaxSteps)
	}
	grid := make([]Point, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			grid = append(grid, Point{x, y})
		}
	}
	return grid, nil
}
