package device

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/arloliu/sweepfit/errs"
	"github.com/arloliu/sweepfit/plot"
	"github.com/arloliu/sweepfit/regression"
	"github.com/arloliu/sweepfit/sweep"
)

// TwoTerminal models a three-column sweep (voltage, drain current, source
// current) of a two-terminal device.
//
// Loading drops the leading and trailing runs of negative voltage, segments
// the sweep, and trims the non-monotone tail of each channel's backward arm
// independently, so the drain and source backward arms can differ in length.
type TwoTerminal struct {
	logger   *slog.Logger
	sourceID uint64
	arms     [2][2]sweep.Curve // [Terminal][Direction]
}

// NewTwoTerminal loads a three-column (voltage, drain current, source current)
// sweep from path.
func NewTwoTerminal(path string, opts ...Option) (*TwoTerminal, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	cols, err := loadColumns(path, 3, cfg)
	if err != nil {
		return nil, err
	}

	return newTwoTerminal(cols[0], cols[1], cols[2], cfg)
}

// TwoTerminalFromColumns builds a TwoTerminal model from samples in
// measurement order.
func TwoTerminalFromColumns(voltage, drain, source []float64, opts ...Option) (*TwoTerminal, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(voltage, drain, source); err != nil {
		return nil, err
	}

	return newTwoTerminal(voltage, drain, source, cfg)
}

func newTwoTerminal(voltage, drain, source []float64, cfg *config) (*TwoTerminal, error) {
	lo, hi := sweep.NonNegativeBounds(voltage)
	if lo == hi {
		return nil, fmt.Errorf("%w: no non-negative voltage samples", errs.ErrEmptySeries)
	}

	v := voltage[lo:hi]
	split, err := sweep.TurningPoint(v)
	if err != nil {
		return nil, err
	}

	tt := &TwoTerminal{
		logger:   cfg.logger,
		sourceID: fingerprint(voltage, drain, source),
	}

	channels := [2][]float64{
		Source: absAll(source[lo:hi]),
		Drain:  absAll(drain[lo:hi]),
	}
	for term, current := range channels {
		raw := sweep.Curve{V: v, I: current}
		fwd := raw.Slice(0, split).Clone()

		bwd, err := sweep.CorrectBackward(raw.Slice(split, raw.Len()))
		if err != nil {
			return nil, fmt.Errorf("%s backward arm: %w", Terminal(term), err)
		}

		tt.arms[term] = [2]sweep.Curve{fwd, bwd.Reversed()}
	}

	tt.logger.Debug("segmented two-terminal sweep",
		slog.Uint64("source_id", tt.sourceID),
		slog.Int("trimmed_head", lo),
		slog.Int("trimmed_tail", len(voltage)-hi),
		slog.Int("split", split),
		slog.Int("drain_backward", tt.arms[Drain][sweep.Backward].Len()),
		slog.Int("source_backward", tt.arms[Source][sweep.Backward].Len()),
	)

	return tt, nil
}

// SourceID returns the xxHash64 fingerprint of the parsed input columns.
func (tt *TwoTerminal) SourceID() uint64 {
	return tt.sourceID
}

// Arm returns one channel's arm. The result shares storage with the model and
// must not be modified.
func (tt *TwoTerminal) Arm(term Terminal, dir sweep.Direction) (sweep.Curve, error) {
	if err := term.Check(); err != nil {
		return sweep.Curve{}, err
	}
	if err := dir.Check(); err != nil {
		return sweep.Curve{}, err
	}

	return tt.arms[term][dir], nil
}

// Fit fits a line to one channel's arm.
func (tt *TwoTerminal) Fit(term Terminal, dir sweep.Direction) (regression.Line, error) {
	arm, err := tt.Arm(term, dir)
	if err != nil {
		return regression.Line{}, err
	}

	return regression.Linear(arm.V, arm.I)
}

// Conductivity returns the fitted slope of one channel's arm.
func (tt *TwoTerminal) Conductivity(term Terminal, dir sweep.Direction) (float64, error) {
	line, err := tt.Fit(term, dir)
	if err != nil {
		return 0, err
	}

	return line.Slope, nil
}

// Hysteresis returns |forward conductivity - backward conductivity| of a channel.
func (tt *TwoTerminal) Hysteresis(term Terminal) (float64, error) {
	fwd, err := tt.Conductivity(term, sweep.Forward)
	if err != nil {
		return 0, err
	}

	bwd, err := tt.Conductivity(term, sweep.Backward)
	if err != nil {
		return 0, err
	}

	return math.Abs(fwd - bwd), nil
}

// PlotFit renders one channel's arm with its fitted line.
func (tt *TwoTerminal) PlotFit(w io.Writer, term Terminal, dir sweep.Direction, opts ...plot.Option) error {
	line, err := tt.Fit(term, dir)
	if err != nil {
		return err
	}

	axes := plot.Axes{X: "V (V)", Y: "I_s (A)"}
	if term == Drain {
		axes.Y = "I_d (A)"
	}

	return plot.Fit(w, tt.arms[term][dir], line, axes, opts...)
}
