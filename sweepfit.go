// Package sweepfit reduces voltage/current sweep measurements of semiconductor
// test devices to electrical parameters: conductivity, hysteresis, threshold
// voltage, carrier mobility and a reliability figure of merit.
//
// A sweep ramps a voltage up and back down while one or two currents are
// recorded. The pipeline runs one way:
//
//	rows (ingest) → columns → arms (sweep) → linear regime (regime) → fit (regression) → metric (device)
//
// # Basic Usage
//
// Output characteristic, narrowed to the linear region below 0.5 V:
//
//	out, err := sweepfit.LoadOutput("run1_output.csv")
//	if err != nil {
//	    return err
//	}
//	if err := out.Narrow(0.5, 0.5); err != nil {
//	    return err
//	}
//	g, err := out.Conductivity()
//
// Transfer characteristic, selecting the square-law region by root-current:
//
//	tr, err := sweepfit.LoadTransfer("run1_transfer.csv.zst")
//	if err != nil {
//	    return err
//	}
//	if err := tr.Narrow(0.002, 0.02); err != nil {
//	    return err
//	}
//	vth, err := tr.VThreshold(sweepfit.Forward)
//	mu, err := tr.Mobility(50e-6, 1e-3, 1.15e-4)
//
// Selectors given as text are parsed once:
//
//	dir, err := sweepfit.ParseDirection("Backward")
//	term, err := sweepfit.ParseTerminal("drain")
//
// # Package Structure
//
// This package provides top-level wrappers for the common cases. The
// underlying packages can be used directly:
//
//   - regression: closed-form least-squares line fit
//   - sweep: curves, turning-point segmentation, backward-arm correction
//   - regime: nearest-to-target and threshold-window selection
//   - device: Output, Transfer, TwoTerminal and Mosfet models
//   - ingest: row reader for plain, compressed and workbook logs
//   - plot: PNG/SVG rendering of arms and fits
package sweepfit

import (
	"github.com/arloliu/sweepfit/device"
	"github.com/arloliu/sweepfit/regression"
	"github.com/arloliu/sweepfit/sweep"
)

// Direction selects the forward or backward arm of a sweep.
type Direction = sweep.Direction

// Sweep directions.
const (
	Forward  = sweep.Forward
	Backward = sweep.Backward
)

// Terminal selects the drain or source channel of a two-terminal sweep.
type Terminal = device.Terminal

// Device terminals.
const (
	Source = device.Source
	Drain  = device.Drain
)

// ParseDirection parses "forward" or "backward", ignoring case.
func ParseDirection(name string) (Direction, error) {
	return sweep.ParseDirection(name)
}

// ParseTerminal parses "source" or "drain", ignoring case.
func ParseTerminal(name string) (Terminal, error) {
	return device.ParseTerminal(name)
}

// Fit fits y = a + b*x by ordinary least squares.
func Fit(x, y []float64) (regression.Line, error) {
	return regression.Linear(x, y)
}

// LoadOutput loads an output-characteristic sweep (voltage, current).
func LoadOutput(path string, opts ...device.Option) (*device.Output, error) {
	return device.NewOutput(path, opts...)
}

// LoadTransfer loads a transfer-characteristic sweep (gate voltage, drain current).
func LoadTransfer(path string, opts ...device.Option) (*device.Transfer, error) {
	return device.NewTransfer(path, opts...)
}

// LoadTwoTerminal loads a three-column sweep (voltage, drain current, source current).
func LoadTwoTerminal(path string, opts ...device.Option) (*device.TwoTerminal, error) {
	return device.NewTwoTerminal(path, opts...)
}

// LoadMosfet loads the output and transfer sweeps of one device.
func LoadMosfet(outputPath, transferPath string, opts ...device.Option) (*device.Mosfet, error) {
	return device.NewMosfet(outputPath, transferPath, opts...)
}
