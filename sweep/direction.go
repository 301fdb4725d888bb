package sweep

import (
	"fmt"
	"strings"

	"github.com/arloliu/sweepfit/errs"
)

// Direction selects one arm of a sweep.
type Direction uint8

const (
	// Forward is the rising-voltage arm.
	Forward Direction = iota
	// Backward is the falling-voltage arm, stored in ascending-voltage order.
	Backward
)

var directionNames = map[Direction]string{
	Forward:  "forward",
	Backward: "backward",
}

var directionFromString = map[string]Direction{
	"forward":  Forward,
	"backward": Backward,
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}

	return "unknown"
}

// Valid reports whether d is one of the defined directions.
func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

// Check returns errs.ErrInvalidDirection if d is not a defined direction.
func (d Direction) Check() error {
	if !d.Valid() {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidDirection, d)
	}

	return nil
}

// ParseDirection parses a direction name case-insensitively ("forward", "Backward", ...).
func ParseDirection(name string) (Direction, error) {
	if d, ok := directionFromString[strings.ToLower(strings.TrimSpace(name))]; ok {
		return d, nil
	}

	return 0, fmt.Errorf("%w: got %q", errs.ErrInvalidDirection, name)
}
