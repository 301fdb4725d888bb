package sweep

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/sweepfit/errs"
)

// Curve is an index-aligned pair of sample series: V holds the swept voltage,
// I the current (or root-current) measured at the same instants.
//
// Order is measurement order until the curve is reversed; a forward or
// backward arm is always stored in ascending-voltage order.
type Curve struct {
	V []float64
	I []float64
}

// Len returns the number of samples in the curve.
func (c Curve) Len() int {
	return len(c.V)
}

// Validate reports errs.ErrLengthMismatch if V and I differ in length.
func (c Curve) Validate() error {
	if len(c.V) != len(c.I) {
		return fmt.Errorf("%w: %d voltage samples, %d current samples", errs.ErrLengthMismatch, len(c.V), len(c.I))
	}

	return nil
}

// Slice returns the samples in [lo, hi). The result shares storage with c.
func (c Curve) Slice(lo, hi int) Curve {
	return Curve{V: c.V[lo:hi], I: c.I[lo:hi]}
}

// Clone returns a deep copy of the curve.
func (c Curve) Clone() Curve {
	return Curve{V: slices.Clone(c.V), I: slices.Clone(c.I)}
}

// Reversed returns a copy of the curve with both channels reversed end-to-start.
func (c Curve) Reversed() Curve {
	out := c.Clone()
	floats.Reverse(out.V)
	floats.Reverse(out.I)

	return out
}
