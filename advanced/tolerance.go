package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// Epsilon is the default magnitude below which two quantities are considered
// equal.
const Epsilon = 1e-3

// Tolerance is the epsilon every comparison in this package goes through.
// Instead of a package global, it is passed explicitly as the receiver of all
// tolerance dependent operations, so one program can mix precisions.
type Tolerance float64

// DefaultTolerance uses Epsilon.
const DefaultTolerance Tolerance = Epsilon

// NewTolerance validates eps. Zero, negative, NaN and infinite values would
// make every equality test either always false or always true.
func NewTolerance(eps float64) (Tolerance, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "tolerance must be a positive finite number, got %v", eps)
	}
	return Tolerance(eps), nil
}

// To compensate for imprecision in floats, equality is tolerance based. Raw
// float equality would make every collinearity and parallelism test unstable
// under rounding.
func AboutEquals(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func AboutZero(a, eps float64) bool {
	return math.Abs(a) < eps
}

func (tol Tolerance) Equal(a, b float64) bool {
	return AboutEquals(a, b, float64(tol))
}

func (tol Tolerance) Zero(a float64) bool {
	return AboutZero(a, float64(tol))
}

// PointsEqual compares coordinate by coordinate.
func (tol Tolerance) PointsEqual(p, q Point) bool {
	return tol.Equal(p.X, q.X) && tol.Equal(p.Y, q.Y)
}
