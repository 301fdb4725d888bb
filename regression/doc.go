// Package regression provides the closed-form ordinary least-squares fit used to
// extract slopes and intercepts from sweep curves.
//
// # Usage
//
//	line, err := regression.Linear(voltage, current)
//	if err != nil {
//	    return err
//	}
//	conductivity := line.Slope
//	threshold := line.Root() // x-axis crossing of the fitted line
//
// The fit is a pure function of its inputs. A degenerate x range (fewer than two
// points, or every x identical) returns errs.ErrDegenerateFit instead of a
// result built from a division by zero.
//
// Only intercept, slope and their variance estimators are returned; no
// goodness-of-fit statistics are computed.
package regression
