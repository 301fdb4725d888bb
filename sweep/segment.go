package sweep

import (
	"fmt"

	"github.com/arloliu/sweepfit/errs"
)

// TurningPoint returns the index that separates the forward arm from the
// backward arm of a voltage sweep.
//
// Every index i is scanned from 0 to len(v)-1, comparing v[i-1] with v[i]; at
// i = 0 the predecessor wraps around to the last sample. The result is the
// last index at which v[i-1] <= v[i] holds.
//
// This is a single-pass heuristic rather than a first-turning-point detector.
// It handles one clean rise followed by one clean fall, but a spurious local
// rise near the end of the backward arm moves the split to that rise.
//
// Returns errs.ErrEmptySeries for an empty input and errs.ErrNoTurningPoint if
// no step qualifies (only possible with NaN samples).
func TurningPoint(v []float64) (int, error) {
	n := len(v)
	if n == 0 {
		return 0, fmt.Errorf("%w: no voltage samples to segment", errs.ErrEmptySeries)
	}

	split := -1
	prev := v[n-1]
	for i, cur := range v {
		if prev <= cur {
			split = i
		}
		prev = cur
	}

	if split < 0 {
		return 0, fmt.Errorf("%w: no non-decreasing voltage step", errs.ErrNoTurningPoint)
	}

	return split, nil
}

// Split segments a raw sweep at its turning point.
//
// The forward arm is c[0:split]; the backward arm is c[split:] reversed, so
// both arms are returned in ascending-voltage order.
func Split(c Curve) (forward, backward Curve, err error) {
	if err = c.Validate(); err != nil {
		return Curve{}, Curve{}, err
	}

	split, err := TurningPoint(c.V)
	if err != nil {
		return Curve{}, Curve{}, err
	}

	forward, backward = SplitAt(c, split)

	return forward, backward, nil
}

// SplitAt is Split with a precomputed turning point, for several current
// channels sharing one voltage channel. split must lie in [0, c.Len()].
func SplitAt(c Curve, split int) (forward, backward Curve) {
	return c.Slice(0, split).Clone(), c.Slice(split, c.Len()).Reversed()
}

// CorrectBackward trims a non-monotone tail from a backward arm whose current
// must fall along the measurement order.
//
// c must still be in measurement (falling-voltage) order. The current is
// scanned like TurningPoint, recording the last index i where I[i-1] >= I[i]
// (wrapping at i = 0), and the curve is truncated to c[0:i].
func CorrectBackward(c Curve) (Curve, error) {
	if err := c.Validate(); err != nil {
		return Curve{}, err
	}

	n := c.Len()
	if n == 0 {
		return Curve{}, fmt.Errorf("%w: no backward samples to correct", errs.ErrEmptySeries)
	}

	cut := -1
	prev := c.I[n-1]
	for i, cur := range c.I {
		if prev >= cur {
			cut = i
		}
		prev = cur
	}

	if cut < 0 {
		return Curve{}, fmt.Errorf("%w: no non-increasing current step", errs.ErrNoTurningPoint)
	}

	return c.Slice(0, cut), nil
}

// NonNegativeBounds returns the window [lo, hi) of v left after dropping the
// leading run and the trailing run of negative samples.
//
// A side without a negative run is left untouched. An all-negative input
// yields an empty window (lo == hi == len(v)).
func NonNegativeBounds(v []float64) (lo, hi int) {
	n := len(v)
	for lo < n && v[lo] < 0 {
		lo++
	}

	hi = n
	for hi > lo && v[hi-1] < 0 {
		hi--
	}

	return lo, hi
}
