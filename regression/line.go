package regression

import "fmt"

// Line is the result of a least-squares fit of y = Intercept + Slope*x.
//
// Only the two parameters and their variances are produced. The covariance
// of the parameters and the reduced chi-square are not computed.
type Line struct {
	// Intercept is the fitted y value at x = 0.
	Intercept float64
	// Slope is the fitted dy/dx.
	Slope float64
	// VarIntercept is the variance estimator of Intercept (Σx² / delta).
	VarIntercept float64
	// VarSlope is the variance estimator of Slope (n / delta).
	VarSlope float64
}

// Estimate evaluates the fitted line at x.
func (l Line) Estimate(x float64) float64 {
	return l.Intercept + l.Slope*x
}

// Root returns the x value at which the fitted line crosses y = 0.
//
// For a horizontal line the result is ±Inf or NaN, following IEEE division.
func (l Line) Root() float64 {
	return -l.Intercept / l.Slope
}

// Coefficients returns the line parameters as [intercept, slope].
func (l Line) Coefficients() []float64 {
	return []float64{l.Intercept, l.Slope}
}

// String returns a human-readable form of the fitted line.
func (l Line) String() string {
	return fmt.Sprintf("y = %.4g + %.4g*x (var a: %.3g, var b: %.3g)",
		l.Intercept, l.Slope, l.VarIntercept, l.VarSlope)
}
