package device

import "fmt"

// Mosfet pairs the output and transfer characteristics measured on one device.
type Mosfet struct {
	Output   *Output
	Transfer *Transfer
}

// NewMosfet loads an output sweep and a transfer sweep with the same options.
func NewMosfet(outputPath, transferPath string, opts ...Option) (*Mosfet, error) {
	out, err := NewOutput(outputPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("output characteristic: %w", err)
	}

	tr, err := NewTransfer(transferPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("transfer characteristic: %w", err)
	}

	return &Mosfet{Output: out, Transfer: tr}, nil
}
