// Package regime selects the linear sub-range of a sweep arm.
//
// Two selection modes are provided, both returning a contiguous leading or
// inner slice of their input and never enlarging it:
//
//   - ToTarget keeps the samples up to the voltage nearest a target value
//     (output characteristics).
//   - Window keeps the samples between the crossings of two y thresholds
//     (transfer characteristics, where y is the root of the drain current).
package regime

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/sweepfit/errs"
	"github.com/arloliu/sweepfit/sweep"
)

// NearestIndex returns the index of the value closest to target.
//
// The scan runs left to right and only moves on a strict improvement, so ties
// resolve to the first occurrence. values must not be empty.
func NearestIndex(values []float64, target float64) int {
	return floats.NearestIdx(values, target)
}

// nearestFromEnd is NearestIndex seeded with the last sample instead of the
// first: the last index wins unless an earlier sample is strictly closer, in
// which case the first such closest sample wins.
func nearestFromEnd(values []float64, target float64) int {
	idx := len(values) - 1
	best := math.Abs(values[idx] - target)
	for i, v := range values {
		if d := math.Abs(v - target); d < best {
			best = d
			idx = i
		}
	}

	return idx
}

// ToTarget truncates an arm to c[0:k+1], where k is the index of the voltage
// nearest target.
func ToTarget(c sweep.Curve, target float64) (sweep.Curve, error) {
	if err := c.Validate(); err != nil {
		return sweep.Curve{}, err
	}
	if c.Len() == 0 {
		return sweep.Curve{}, fmt.Errorf("%w: cannot select a regime from an empty arm", errs.ErrEmptySeries)
	}

	k := NearestIndex(c.V, target)

	return c.Slice(0, k+1), nil
}

// Window truncates an arm to the samples between the crossings of llim and
// ulim by its y channel (c.I).
//
// lIndex is the index nearest llim, scanning from the first sample; uIndex is
// the index nearest ulim, seeded with the last sample. The arm is cut to
// [0 : uIndex+1] first and then to [lIndex :] of that.
//
// The lower crossing must not come after the upper one along the stored
// order; otherwise errs.ErrThresholdOrder is returned and the arm is not
// reordered.
func Window(c sweep.Curve, llim, ulim float64) (sweep.Curve, error) {
	if err := c.Validate(); err != nil {
		return sweep.Curve{}, err
	}
	if c.Len() == 0 {
		return sweep.Curve{}, fmt.Errorf("%w: cannot select a regime from an empty arm", errs.ErrEmptySeries)
	}

	lIndex := NearestIndex(c.I, llim)
	uIndex := nearestFromEnd(c.I, ulim)
	if lIndex > uIndex {
		return sweep.Curve{}, fmt.Errorf("%w: lower limit %g at index %d, upper limit %g at index %d",
			errs.ErrThresholdOrder, llim, lIndex, ulim, uIndex)
	}

	return c.Slice(0, uIndex+1).Slice(lIndex, uIndex+1), nil
}
