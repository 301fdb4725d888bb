package device

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/arloliu/sweepfit/plot"
	"github.com/arloliu/sweepfit/regime"
	"github.com/arloliu/sweepfit/regression"
	"github.com/arloliu/sweepfit/sweep"
)

// TransferAxes labels transfer-characteristic charts.
var TransferAxes = plot.Axes{X: "V_g (V)", Y: "sqrt(I_ds) (A^0.5)"}

// Transfer models the transfer characteristic of a gated device: drain
// current over a gate voltage sweep.
//
// The gate voltage keeps its sign. The current is taken as a magnitude and
// square-rooted, which linearizes the square-law region, so every arm holds
// (V_g, sqrt|I_ds|) pairs.
type Transfer struct {
	logger        *slog.Logger
	sourceID      uint64
	zeroTolerance float64
	curve         sweep.Curve
	arms          [2]sweep.Curve
}

// NewTransfer loads a two-column (gate voltage, drain current) sweep from path.
func NewTransfer(path string, opts ...Option) (*Transfer, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	cols, err := loadColumns(path, 2, cfg)
	if err != nil {
		return nil, err
	}

	return newTransfer(cols[0], cols[1], cfg)
}

// TransferFromColumns builds a Transfer model from gate voltage and drain
// current samples in measurement order.
func TransferFromColumns(voltage, current []float64, opts ...Option) (*Transfer, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(voltage, current); err != nil {
		return nil, err
	}

	return newTransfer(voltage, current, cfg)
}

func newTransfer(voltage, current []float64, cfg *config) (*Transfer, error) {
	root := make([]float64, len(current))
	for i, v := range current {
		root[i] = math.Sqrt(math.Abs(v))
	}

	curve := sweep.Curve{V: append([]float64(nil), voltage...), I: root}
	fwd, bwd, err := sweep.Split(curve)
	if err != nil {
		return nil, err
	}

	t := &Transfer{
		logger:        cfg.logger,
		sourceID:      fingerprint(voltage, current),
		zeroTolerance: cfg.zeroTolerance,
		curve:         curve,
		arms:          [2]sweep.Curve{fwd, bwd},
	}

	t.logger.Debug("segmented transfer sweep",
		slog.Uint64("source_id", t.sourceID),
		slog.Int("forward", fwd.Len()),
		slog.Int("backward", bwd.Len()),
	)

	return t, nil
}

// SourceID returns the xxHash64 fingerprint of the parsed input columns.
func (t *Transfer) SourceID() uint64 {
	return t.sourceID
}

// Curve returns the full sweep as (V_g, sqrt|I_ds|) in measurement order.
// The result shares storage with the model and must not be modified.
func (t *Transfer) Curve() sweep.Curve {
	return t.curve
}

// Arm returns the current, possibly narrowed, arm. The result shares storage
// with the model and must not be modified.
func (t *Transfer) Arm(dir sweep.Direction) (sweep.Curve, error) {
	if err := dir.Check(); err != nil {
		return sweep.Curve{}, err
	}

	return t.arms[dir], nil
}

// Narrow keeps, on both arms, the samples between the crossings of the
// root-current thresholds llim and ulim, replacing the stored arms.
//
// Neither arm is replaced if either selection fails.
func (t *Transfer) Narrow(llim, ulim float64) error {
	fwd, err := regime.Window(t.arms[sweep.Forward], llim, ulim)
	if err != nil {
		return fmt.Errorf("forward arm: %w", err)
	}

	bwd, err := regime.Window(t.arms[sweep.Backward], llim, ulim)
	if err != nil {
		return fmt.Errorf("backward arm: %w", err)
	}

	t.logger.Debug("narrowed transfer regime",
		slog.Uint64("source_id", t.sourceID),
		slog.Float64("llim", llim),
		slog.Float64("ulim", ulim),
		slog.Int("forward_before", t.arms[sweep.Forward].Len()),
		slog.Int("forward_after", fwd.Len()),
		slog.Int("backward_before", t.arms[sweep.Backward].Len()),
		slog.Int("backward_after", bwd.Len()),
	)

	t.arms = [2]sweep.Curve{fwd, bwd}

	return nil
}

// Fit fits a line to sqrt|I_ds| over V_g on the current arm.
func (t *Transfer) Fit(dir sweep.Direction) (regression.Line, error) {
	arm, err := t.Arm(dir)
	if err != nil {
		return regression.Line{}, err
	}

	return regression.Linear(arm.V, arm.I)
}

// Mobility returns the carrier mobility 2·L·slope² / (W·C) from the forward
// fit, for channel length L, channel width W and gate capacitance per unit
// area C, all in SI units.
func (t *Transfer) Mobility(length, width, capacitance float64) (float64, error) {
	line, err := t.Fit(sweep.Forward)
	if err != nil {
		return 0, err
	}

	return 2 * length * line.Slope * line.Slope / (width * capacitance), nil
}

// VThreshold returns the threshold voltage of an arm, the V_g at which its
// fitted line reaches zero root-current.
func (t *Transfer) VThreshold(dir sweep.Direction) (float64, error) {
	line, err := t.Fit(dir)
	if err != nil {
		return 0, err
	}

	return line.Root(), nil
}

// DelVThreshold returns |forward threshold - backward threshold|.
func (t *Transfer) DelVThreshold() (float64, error) {
	fwd, err := t.VThreshold(sweep.Forward)
	if err != nil {
		return 0, err
	}

	bwd, err := t.VThreshold(sweep.Backward)
	if err != nil {
		return 0, err
	}

	return math.Abs(fwd - bwd), nil
}

// extrema locates the samples used by Reliability by value, not position.
//
// vgsMax is the largest gate voltage and idsMax the root-current of the last
// sample at that voltage. idsZero is the root-current of the last sample with
// |V_g| below tolerance, or 0 if there is none.
func extrema(c sweep.Curve, tolerance float64) (idsMax, vgsMax, idsZero float64) {
	vgsMax = math.Inf(-1)
	for i, v := range c.V {
		if v >= vgsMax {
			vgsMax = v
			idsMax = c.I[i]
		}
		if math.Abs(v) < tolerance {
			idsZero = c.I[i]
		}
	}

	return idsMax, vgsMax, idsZero
}

// Reliability returns the reliability factor
//
//	((idsMax - idsZero) / vgsMax)² / slope²
//
// where idsMax and vgsMax come from the sample at the maximum gate voltage,
// idsZero from the sample at zero gate voltage (within the configured zero
// tolerance), both searched over the full sweep, and slope is the forward
// fit's slope. It compares the conductance reached at maximum gate bias with
// what an ideal device of the extracted mobility would reach.
func (t *Transfer) Reliability() (float64, error) {
	line, err := t.Fit(sweep.Forward)
	if err != nil {
		return 0, err
	}

	idsMax, vgsMax, idsZero := extrema(t.curve, t.zeroTolerance)
	ratio := (idsMax - idsZero) / vgsMax

	return ratio * ratio / (line.Slope * line.Slope), nil
}

// ElectricalPerformance returns Reliability() × Mobility(length, width, capacitance).
func (t *Transfer) ElectricalPerformance(length, width, capacitance float64) (float64, error) {
	r, err := t.Reliability()
	if err != nil {
		return 0, err
	}

	mu, err := t.Mobility(length, width, capacitance)
	if err != nil {
		return 0, err
	}

	return r * mu, nil
}

// PlotFit renders the current arm with its fitted line.
func (t *Transfer) PlotFit(w io.Writer, dir sweep.Direction, opts ...plot.Option) error {
	line, err := t.Fit(dir)
	if err != nil {
		return err
	}

	return plot.Fit(w, t.arms[dir], line, TransferAxes, opts...)
}

// PlotCurve renders the full sweep, the hysteresis loop used to choose the
// Narrow thresholds.
func (t *Transfer) PlotCurve(w io.Writer, opts ...plot.Option) error {
	return plot.Curve(w, t.curve, TransferAxes, opts...)
}
