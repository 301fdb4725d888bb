package device

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/sweepfit/errs"
	"github.com/arloliu/sweepfit/sweep"
)

// After trimming the negative edges the sweep is 0 → 3 → 0 with the turn at
// index 3. The drain backward tail rises again at the end and gets cut.
var (
	ttV      = []float64{-1, -0.5, 0, 1, 2, 3, 2, 1, 0, -0.5, -1}
	ttDrain  = []float64{9, 9, 0, -0.2, -0.4, -0.6, -0.4, -0.2, -0.25, 9, 9}
	ttSource = []float64{9, 9, 0, 0.1, 0.2, 0.45, 0.3, 0.15, 0, 9, 9}
)

func TestTwoTerminalFromColumns(t *testing.T) {
	tt, err := TwoTerminalFromColumns(ttV, ttDrain, ttSource)
	require.NoError(t, err)

	tests := []struct {
		term  Terminal
		dir   sweep.Direction
		v     []float64
		i     []float64
		slope float64
	}{
		{Drain, sweep.Forward, []float64{0, 1, 2}, []float64{0, 0.2, 0.4}, 0.2},
		{Drain, sweep.Backward, []float64{2, 3}, []float64{0.4, 0.6}, 0.2},
		{Source, sweep.Forward, []float64{0, 1, 2}, []float64{0, 0.1, 0.2}, 0.1},
		{Source, sweep.Backward, []float64{1, 2, 3}, []float64{0.15, 0.3, 0.45}, 0.15},
	}

	for _, tc := range tests {
		t.Run(tc.term.String()+"/"+tc.dir.String(), func(t *testing.T) {
			arm, err := tt.Arm(tc.term, tc.dir)
			require.NoError(t, err)
			assert.Equal(t, tc.v, arm.V)
			assert.Equal(t, tc.i, arm.I)

			g, err := tt.Conductivity(tc.term, tc.dir)
			require.NoError(t, err)
			assert.InDelta(t, tc.slope, g, 1e-12)
		})
	}

	hd, err := tt.Hysteresis(Drain)
	require.NoError(t, err)
	assert.InDelta(t, 0, hd, 1e-12)

	hs, err := tt.Hysteresis(Source)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, hs, 1e-12)
}

func TestTwoTerminal_NoNegativeEdges(t *testing.T) {
	v := ttV[2:9]
	tt, err := TwoTerminalFromColumns(v, ttDrain[2:9], ttSource[2:9])
	require.NoError(t, err)

	trimmed, err := TwoTerminalFromColumns(ttV, ttDrain, ttSource)
	require.NoError(t, err)

	for _, term := range []Terminal{Source, Drain} {
		for _, dir := range []sweep.Direction{sweep.Forward, sweep.Backward} {
			want, err := trimmed.Arm(term, dir)
			require.NoError(t, err)
			got, err := tt.Arm(term, dir)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestTwoTerminal_AllNegative(t *testing.T) {
	_, err := TwoTerminalFromColumns([]float64{-1, -2}, []float64{1, 2}, []float64{1, 2})
	require.ErrorIs(t, err, errs.ErrEmptySeries)
}

func TestTwoTerminal_Invalid(t *testing.T) {
	_, err := TwoTerminalFromColumns(ttV, ttDrain, ttSource[:3])
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	tt, err := TwoTerminalFromColumns(ttV, ttDrain, ttSource)
	require.NoError(t, err)

	_, err = tt.Conductivity(Terminal(5), sweep.Forward)
	require.ErrorIs(t, err, errs.ErrInvalidTerminal)

	_, err = tt.Conductivity(Drain, sweep.Direction(5))
	require.ErrorIs(t, err, errs.ErrInvalidDirection)

	_, err = tt.Hysteresis(Terminal(5))
	require.ErrorIs(t, err, errs.ErrInvalidTerminal)

	var buf bytes.Buffer
	require.ErrorIs(t, tt.PlotFit(&buf, Terminal(5), sweep.Forward), errs.ErrInvalidTerminal)
	assert.Zero(t, buf.Len())
}

func TestTwoTerminal_Plot(t *testing.T) {
	tt, err := TwoTerminalFromColumns(ttV, ttDrain, ttSource)
	require.NoError(t, err)

	for _, term := range []Terminal{Source, Drain} {
		var buf bytes.Buffer
		require.NoError(t, tt.PlotFit(&buf, term, sweep.Backward))
		assert.Positive(t, buf.Len())
	}
}

func TestParseTerminal(t *testing.T) {
	tests := []struct {
		in      string
		want    Terminal
		wantErr bool
	}{
		{"source", Source, false},
		{"Source", Source, false},
		{"DRAIN", Drain, false},
		{" drain ", Drain, false},
		{"gate", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTerminal(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidTerminal)
				require.Contains(t, err.Error(), "drain, source")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTerminal_String(t *testing.T) {
	assert.Equal(t, "source", Source.String())
	assert.Equal(t, "drain", Drain.String())
	assert.Equal(t, "unknown", Terminal(9).String())
	assert.NoError(t, Drain.Check())
}
