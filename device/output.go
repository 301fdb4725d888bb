package device

import (
	"io"
	"log/slog"
	"math"

	"github.com/arloliu/sweepfit/plot"
	"github.com/arloliu/sweepfit/regime"
	"github.com/arloliu/sweepfit/regression"
	"github.com/arloliu/sweepfit/sweep"
)

// OutputAxes labels output-characteristic charts.
var OutputAxes = plot.Axes{X: "V_ds (V)", Y: "I_ds (A)"}

// Output models the output characteristic of a device: drain current over a
// drain voltage sweep, both taken as magnitudes.
//
// The arms are narrowed in place by Narrow; the arms as segmented at load
// time stay available through Original.
type Output struct {
	logger   *slog.Logger
	sourceID uint64
	original [2]sweep.Curve
	arms     [2]sweep.Curve
}

// NewOutput loads a two-column (voltage, current) sweep from path.
func NewOutput(path string, opts ...Option) (*Output, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	cols, err := loadColumns(path, 2, cfg)
	if err != nil {
		return nil, err
	}

	return newOutput(cols[0], cols[1], cfg)
}

// OutputFromColumns builds an Output model from voltage and current samples
// in measurement order.
func OutputFromColumns(voltage, current []float64, opts ...Option) (*Output, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(voltage, current); err != nil {
		return nil, err
	}

	return newOutput(voltage, current, cfg)
}

func newOutput(voltage, current []float64, cfg *config) (*Output, error) {
	raw := sweep.Curve{V: absAll(voltage), I: absAll(current)}
	fwd, bwd, err := sweep.Split(raw)
	if err != nil {
		return nil, err
	}

	o := &Output{
		logger:   cfg.logger,
		sourceID: fingerprint(voltage, current),
		original: [2]sweep.Curve{fwd.Clone(), bwd.Clone()},
		arms:     [2]sweep.Curve{fwd, bwd},
	}

	o.logger.Debug("segmented output sweep",
		slog.Uint64("source_id", o.sourceID),
		slog.Int("forward", fwd.Len()),
		slog.Int("backward", bwd.Len()),
	)

	return o, nil
}

// SourceID returns the xxHash64 fingerprint of the parsed input columns.
func (o *Output) SourceID() uint64 {
	return o.sourceID
}

// Original returns a copy of an arm as segmented at load time, unaffected by
// Narrow.
func (o *Output) Original(dir sweep.Direction) (sweep.Curve, error) {
	if err := dir.Check(); err != nil {
		return sweep.Curve{}, err
	}

	return o.original[dir].Clone(), nil
}

// Arm returns the current, possibly narrowed, arm. The result shares storage
// with the model and must not be modified.
func (o *Output) Arm(dir sweep.Direction) (sweep.Curve, error) {
	if err := dir.Check(); err != nil {
		return sweep.Curve{}, err
	}

	return o.arms[dir], nil
}

// Narrow keeps each arm up to the voltage nearest its target, replacing the
// stored arms. The forward and backward targets may differ.
//
// Narrowing compounds: a second call narrows the already-narrowed arms.
// Neither arm is replaced if either selection fails.
func (o *Output) Narrow(forwardTarget, backwardTarget float64) error {
	fwd, err := regime.ToTarget(o.arms[sweep.Forward], forwardTarget)
	if err != nil {
		return err
	}

	bwd, err := regime.ToTarget(o.arms[sweep.Backward], backwardTarget)
	if err != nil {
		return err
	}

	o.logger.Debug("narrowed output regime",
		slog.Uint64("source_id", o.sourceID),
		slog.Float64("forward_target", forwardTarget),
		slog.Float64("backward_target", backwardTarget),
		slog.Int("forward_before", o.arms[sweep.Forward].Len()),
		slog.Int("forward_after", fwd.Len()),
		slog.Int("backward_before", o.arms[sweep.Backward].Len()),
		slog.Int("backward_after", bwd.Len()),
	)

	o.arms = [2]sweep.Curve{fwd, bwd}

	return nil
}

// Fit fits a line to the current arm in the given direction.
func (o *Output) Fit(dir sweep.Direction) (regression.Line, error) {
	arm, err := o.Arm(dir)
	if err != nil {
		return regression.Line{}, err
	}

	return regression.Linear(arm.V, arm.I)
}

// Conductivity returns the slope of the forward arm.
func (o *Output) Conductivity() (float64, error) {
	line, err := o.Fit(sweep.Forward)
	if err != nil {
		return 0, err
	}

	return line.Slope, nil
}

// Hysteresis returns |forward slope - backward slope|.
func (o *Output) Hysteresis() (float64, error) {
	fwd, err := o.Fit(sweep.Forward)
	if err != nil {
		return 0, err
	}

	bwd, err := o.Fit(sweep.Backward)
	if err != nil {
		return 0, err
	}

	return math.Abs(fwd.Slope - bwd.Slope), nil
}

// PlotFit renders the current arm with its fitted line.
func (o *Output) PlotFit(w io.Writer, dir sweep.Direction, opts ...plot.Option) error {
	line, err := o.Fit(dir)
	if err != nil {
		return err
	}

	return plot.Fit(w, o.arms[dir], line, OutputAxes, opts...)
}

// PlotOriginal renders an arm as segmented at load time.
func (o *Output) PlotOriginal(w io.Writer, dir sweep.Direction, opts ...plot.Option) error {
	if err := dir.Check(); err != nil {
		return err
	}

	return plot.Curve(w, o.original[dir], OutputAxes, opts...)
}
