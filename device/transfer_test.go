package device

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/sweepfit/errs"
	"github.com/arloliu/sweepfit/sweep"
)

const (
	beta        = 2e-4 // A/V², so sqrt(beta/2) = 0.01
	forwardVth  = 1.0
	backwardVth = 1.2
)

// squareLaw is the Level-1 saturation current ½·β·(Vg − Vth)², zero below threshold.
func squareLaw(vg, vth float64) float64 {
	if vg <= vth {
		return 0
	}

	return 0.5 * beta * (vg - vth) * (vg - vth)
}

// transferSweep sweeps Vg 0 → 5 → 0 in 0.5 V steps; the backward half,
// including the 5 V peak, follows a shifted threshold.
func transferSweep() (vg, ids []float64) {
	for i := 0; i <= 10; i++ {
		vg = append(vg, float64(i)*0.5)
	}
	for i := 9; i >= 0; i-- {
		vg = append(vg, float64(i)*0.5)
	}

	for i, v := range vg {
		vth := forwardVth
		if i >= 10 {
			vth = backwardVth
		}
		ids = append(ids, -squareLaw(v, vth))
	}

	return vg, ids
}

func TestTransfer_Segmentation(t *testing.T) {
	vg, ids := transferSweep()
	tr, err := TransferFromColumns(vg, ids)
	require.NoError(t, err)

	fwd, err := tr.Arm(sweep.Forward)
	require.NoError(t, err)
	require.Equal(t, 10, fwd.Len())
	assert.Equal(t, 4.5, fwd.V[fwd.Len()-1])

	bwd, err := tr.Arm(sweep.Backward)
	require.NoError(t, err)
	require.Equal(t, 11, bwd.Len())
	assert.Equal(t, 0.0, bwd.V[0])
	assert.Equal(t, 5.0, bwd.V[bwd.Len()-1])

	full := tr.Curve()
	require.Equal(t, len(vg), full.Len())
	for i := range ids {
		assert.InDelta(t, math.Sqrt(math.Abs(ids[i])), full.I[i], 1e-15)
	}
}

func TestTransfer_NarrowAndThreshold(t *testing.T) {
	vg, ids := transferSweep()
	tr, err := TransferFromColumns(vg, ids)
	require.NoError(t, err)

	require.NoError(t, tr.Narrow(0.005, 0.03))

	fwd, err := tr.Arm(sweep.Forward)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, 2.5, 3, 3.5, 4}, fwd.V)

	bwd, err := tr.Arm(sweep.Backward)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, 2.5, 3, 3.5, 4}, bwd.V)

	vf, err := tr.VThreshold(sweep.Forward)
	require.NoError(t, err)
	assert.InDelta(t, forwardVth, vf, 1e-9)

	vb, err := tr.VThreshold(sweep.Backward)
	require.NoError(t, err)
	assert.InDelta(t, backwardVth, vb, 1e-9)

	dv, err := tr.DelVThreshold()
	require.NoError(t, err)
	assert.InDelta(t, backwardVth-forwardVth, dv, 1e-9)

	const length, width, capacitance = 1e-5, 1e-3, 1e-4
	mu, err := tr.Mobility(length, width, capacitance)
	require.NoError(t, err)
	assert.InEpsilon(t, 2*length*beta/2/(width*capacitance), mu, 1e-9)
}

func TestTransfer_NarrowThresholdOrder(t *testing.T) {
	vg, ids := transferSweep()
	tr, err := TransferFromColumns(vg, ids)
	require.NoError(t, err)

	before, err := tr.Arm(sweep.Forward)
	require.NoError(t, err)

	err = tr.Narrow(0.03, 0.005)
	require.ErrorIs(t, err, errs.ErrThresholdOrder)

	after, err := tr.Arm(sweep.Forward)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed narrowing leaves the arms untouched")
}

func TestTransfer_Reliability(t *testing.T) {
	root := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	ids := make([]float64, len(root))
	for i, r := range root {
		ids[i] = r * r
	}

	tr, err := TransferFromColumns([]float64{-2, -1, 0, 1, 2}, ids)
	require.NoError(t, err)

	slope, err := tr.Fit(sweep.Forward)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, slope.Slope, 1e-12)

	r, err := tr.Reliability()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-9)

	const length, width, capacitance = 1e-5, 1e-3, 1e-4
	mu, err := tr.Mobility(length, width, capacitance)
	require.NoError(t, err)
	ep, err := tr.ElectricalPerformance(length, width, capacitance)
	require.NoError(t, err)
	assert.InEpsilon(t, r*mu, ep, 1e-12)
}

func TestTransferFromColumns_Empty(t *testing.T) {
	// Reliability relies on every Transfer holding at least one sample.
	_, err := TransferFromColumns(nil, nil)
	require.ErrorIs(t, err, errs.ErrEmptySeries)

	_, err = TransferFromColumns([]float64{}, []float64{})
	require.ErrorIs(t, err, errs.ErrEmptySeries)
}

func TestExtrema_ByValue(t *testing.T) {
	v := []float64{-2, -1, 0, 1, 2}
	i := []float64{0.1, 0.2, 0.3, 0.4, 0.5}

	rng := rand.New(rand.NewSource(7))
	for range 20 {
		perm := rng.Perm(len(v))
		c := sweep.Curve{V: make([]float64, len(v)), I: make([]float64, len(v))}
		for dst, src := range perm {
			c.V[dst] = v[src]
			c.I[dst] = i[src]
		}

		idsMax, vgsMax, idsZero := extrema(c, DefaultZeroTolerance)
		assert.Equal(t, 0.5, idsMax)
		assert.Equal(t, 2.0, vgsMax)
		assert.Equal(t, 0.3, idsZero)
	}
}

func TestExtrema_LastMatchWins(t *testing.T) {
	c := sweep.Curve{
		V: []float64{0, 2, 1e-6, 2, -3e-6},
		I: []float64{0.1, 0.5, 0.2, 0.6, 0.3},
	}

	idsMax, vgsMax, idsZero := extrema(c, DefaultZeroTolerance)
	assert.Equal(t, 0.6, idsMax)
	assert.Equal(t, 2.0, vgsMax)
	assert.Equal(t, 0.3, idsZero)
}

func TestExtrema_ZeroTolerance(t *testing.T) {
	c := sweep.Curve{
		V: []float64{-1, 1e-4, 1},
		I: []float64{0.1, 0.2, 0.3},
	}

	_, _, idsZero := extrema(c, DefaultZeroTolerance)
	assert.Equal(t, 0.0, idsZero, "no sample within tolerance")

	_, _, idsZero = extrema(c, 1e-3)
	assert.Equal(t, 0.2, idsZero)
}

func TestTransfer_WithZeroTolerance(t *testing.T) {
	v := []float64{-2, -1, 1e-4, 1, 2}
	ids := []float64{0.01, 0.04, 0.09, 0.16, 0.25}

	strict, err := TransferFromColumns(v, ids)
	require.NoError(t, err)
	loose, err := TransferFromColumns(v, ids, WithZeroTolerance(1e-3))
	require.NoError(t, err)

	rs, err := strict.Reliability()
	require.NoError(t, err)
	rl, err := loose.Reliability()
	require.NoError(t, err)
	assert.Greater(t, rs, rl, "subtracting the zero-bias current lowers reliability")

	for _, tol := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := TransferFromColumns(v, ids, WithZeroTolerance(tol))
		require.ErrorIs(t, err, errs.ErrInvalidOption, "tolerance %g", tol)
	}
}

func TestTransfer_InvalidDirection(t *testing.T) {
	vg, ids := transferSweep()
	tr, err := TransferFromColumns(vg, ids)
	require.NoError(t, err)

	_, err = tr.VThreshold(sweep.Direction(2))
	require.ErrorIs(t, err, errs.ErrInvalidDirection)

	var buf bytes.Buffer
	require.ErrorIs(t, tr.PlotFit(&buf, sweep.Direction(2)), errs.ErrInvalidDirection)
}

func TestTransfer_Plot(t *testing.T) {
	vg, ids := transferSweep()
	tr, err := TransferFromColumns(vg, ids)
	require.NoError(t, err)
	require.NoError(t, tr.Narrow(0.005, 0.03))

	var curve, fit bytes.Buffer
	require.NoError(t, tr.PlotCurve(&curve))
	require.NoError(t, tr.PlotFit(&fit, sweep.Backward))
	assert.Positive(t, curve.Len())
	assert.Positive(t, fit.Len())
}

func ExampleTransfer_VThreshold() {
	vg := []float64{0, 1, 2, 3, 4, 5, 4, 3, 2, 1, 0}
	ids := make([]float64, len(vg))
	for i, v := range vg {
		ids[i] = 0.5 * 2e-4 * (v + 1) * (v + 1)
	}

	tr, err := TransferFromColumns(vg, ids)
	if err != nil {
		fmt.Println(err)
		return
	}

	vth, _ := tr.VThreshold(sweep.Forward)
	fmt.Printf("Vth = %.2f V\n", vth)
	// Output: Vth = -1.00 V
}
