package regression

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/sweepfit/errs"
)

// Linear fits the line y = a + b*x to the given points by ordinary least squares.
//
// The fit is computed in closed form from five running sums over the n points:
//
//	s = n, Σx, Σy, Σx², Σxy
//	delta = s·Σx² − (Σx)²
//	a     = (Σx²·Σy − Σx·Σxy) / delta
//	b     = (s·Σxy − Σx·Σy) / delta
//	var(a) = Σx² / delta
//	var(b) = s / delta
//
// The sums are order-insensitive, so permuting the (x, y) pairs does not change
// the result beyond floating-point rounding.
//
// Parameters:
//   - x: Independent values (voltage)
//   - y: Dependent values (current or root-current), same length as x
//
// Returns:
//   - Line: Fitted intercept, slope and their variances
//   - error: errs.ErrLengthMismatch if len(x) != len(y), errs.ErrDegenerateFit
//     if delta is zero (fewer than two points or all x identical)
func Linear(x, y []float64) (Line, error) {
	if len(x) != len(y) {
		return Line{}, fmt.Errorf("%w: %d x values, %d y values", errs.ErrLengthMismatch, len(x), len(y))
	}

	s := float64(len(x))
	sumX := floats.Sum(x)
	sumY := floats.Sum(y)
	sumXX := floats.Dot(x, x)
	sumXY := floats.Dot(x, y)

	delta := s*sumXX - sumX*sumX
	if delta == 0 {
		return Line{}, fmt.Errorf("%w: %d points", errs.ErrDegenerateFit, len(x))
	}

	return Line{
		Intercept:    (sumXX*sumY - sumX*sumXY) / delta,
		Slope:        (s*sumXY - sumX*sumY) / delta,
		VarIntercept: sumXX / delta,
		VarSlope:     s / delta,
	}, nil
}

// Slope fits the points and returns only the slope.
func Slope(x, y []float64) (float64, error) {
	line, err := Linear(x, y)
	if err != nil {
		return 0, err
	}

	return line.Slope, nil
}
