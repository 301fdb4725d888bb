package device

import (
	"fmt"
	"strings"

	"github.com/arloliu/sweepfit/errs"
)

// Terminal selects the current channel of a three-column two-terminal sweep.
type Terminal uint8

const (
	Source Terminal = iota // Source is the source current channel (third column).
	Drain                  // Drain is the drain current channel (second column).
)

var terminalNames = map[Terminal]string{
	Source: "source",
	Drain:  "drain",
}

// String returns the lower-case name of the terminal.
func (t Terminal) String() string {
	if name, ok := terminalNames[t]; ok {
		return name
	}

	return "unknown"
}

// Check returns errs.ErrInvalidTerminal if t is not a defined terminal.
func (t Terminal) Check() error {
	if _, ok := terminalNames[t]; !ok {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidTerminal, t)
	}

	return nil
}

// ParseTerminal parses a terminal name case-insensitively ("source", "Drain", ...).
func ParseTerminal(name string) (Terminal, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "source":
		return Source, nil
	case "drain":
		return Drain, nil
	default:
		return 0, fmt.Errorf("%w: got %q", errs.ErrInvalidTerminal, name)
	}
}
