// Package errs defines the sentinel errors shared by the sweepfit packages.
//
// Call sites wrap these with fmt.Errorf("%w: ...") to add context, so callers
// should match them with errors.Is rather than comparing messages.
package errs

import "errors"

// Selector errors.
var (
	// ErrInvalidDirection is returned for a sweep direction outside {forward, backward}.
	ErrInvalidDirection = errors.New("invalid sweep direction, must be one of: forward, backward")
	// ErrInvalidTerminal is returned for a device terminal outside {source, drain}.
	ErrInvalidTerminal = errors.New("invalid terminal, must be one of: drain, source")
)

// Numerical errors.
var (
	// ErrDegenerateFit is returned when the x values of a fit have no spread
	// (fewer than two points, or all x identical), which makes the OLS
	// denominator zero.
	ErrDegenerateFit = errors.New("degenerate fit: x values have zero variance")
	// ErrLengthMismatch is returned when index-aligned series differ in length.
	ErrLengthMismatch = errors.New("series length mismatch")
	// ErrEmptySeries is returned when an operation needs at least one sample.
	ErrEmptySeries = errors.New("empty series")
	// ErrThresholdOrder is returned when the lower threshold of a regime
	// window is crossed after the upper one.
	ErrThresholdOrder = errors.New("lower threshold crossing lies after upper threshold crossing")
	// ErrNoTurningPoint is returned when a scan finds no qualifying step,
	// which only happens for series containing NaN.
	ErrNoTurningPoint = errors.New("no turning point found")
)

// Input errors.
var (
	// ErrOpenInput is returned when an input file cannot be opened. The
	// underlying os error stays in the chain.
	ErrOpenInput = errors.New("cannot open input")
	// ErrMalformedRow is returned when a field does not parse as a number.
	// The message names the line and field.
	ErrMalformedRow = errors.New("malformed row")
	// ErrColumnCount is returned when a row has fewer fields than the model reads.
	ErrColumnCount = errors.New("not enough columns")
	// ErrUnsupportedCompression is returned when no codec is registered for a
	// compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

// Configuration errors.
var (
	// ErrInvalidOption is returned when a functional option receives an unusable value.
	ErrInvalidOption = errors.New("invalid option")
)
