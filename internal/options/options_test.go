package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fitConfig struct {
	tolerance float64
	label     string
	calls     []string
}

var errNegative = errors.New("tolerance cannot be negative")

func withTolerance(tol float64) Option[*fitConfig] {
	return New(func(c *fitConfig) error {
		if tol < 0 {
			return errNegative
		}
		c.tolerance = tol
		c.calls = append(c.calls, "tolerance")

		return nil
	})
}

func withLabel(label string) Option[*fitConfig] {
	return NoError(func(c *fitConfig) {
		c.label = label
		c.calls = append(c.calls, "label")
	})
}

func TestNew(t *testing.T) {
	cfg := &fitConfig{}

	require.NoError(t, withTolerance(1e-5).apply(cfg))
	require.Equal(t, 1e-5, cfg.tolerance)

	require.ErrorIs(t, withTolerance(-1).apply(cfg), errNegative)
	require.Equal(t, 1e-5, cfg.tolerance, "failed option leaves target untouched")
}

func TestNoError(t *testing.T) {
	cfg := &fitConfig{}

	require.NoError(t, withLabel("forward").apply(cfg))
	require.Equal(t, "forward", cfg.label)
}

func TestApply(t *testing.T) {
	t.Run("in order", func(t *testing.T) {
		cfg := &fitConfig{}
		err := Apply(cfg, withLabel("a"), withTolerance(2), withLabel("b"))
		require.NoError(t, err)
		require.Equal(t, "b", cfg.label)
		require.Equal(t, []string{"label", "tolerance", "label"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &fitConfig{}
		err := Apply(cfg, withLabel("a"), withTolerance(-1), withLabel("b"))
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, []string{"label"}, cfg.calls)
	})

	t.Run("nil and empty", func(t *testing.T) {
		cfg := &fitConfig{}
		require.NoError(t, Apply(cfg))
		require.NoError(t, Apply(cfg, nil, withLabel("x")))
		require.Equal(t, "x", cfg.label)
	})
}
