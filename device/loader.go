package device

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/sweepfit/errs"
	"github.com/arloliu/sweepfit/internal/hash"
)

// loadColumns reads path through the configured row reader and parses the
// first n fields of every non-blank row as float64.
//
// Extra fields are ignored. Rows are numbered from 1 in error messages,
// counting blank rows, so the number matches the line in the file.
func loadColumns(path string, n int, cfg *config) ([][]float64, error) {
	rows, err := cfg.rowReader().ReadRows(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	cols, err := parseColumns(rows, n)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	cfg.logger.Debug("loaded sweep",
		slog.String("path", path),
		slog.Int("rows", len(cols[0])),
		slog.Int("columns", n),
		slog.Uint64("fingerprint", fingerprint(cols...)),
	)

	return cols, nil
}

func parseColumns(rows [][]string, n int) ([][]float64, error) {
	cols := make([][]float64, n)
	for c := range cols {
		cols[c] = make([]float64, 0, len(rows))
	}

	for idx, row := range rows {
		if isBlank(row) {
			continue
		}

		line := idx + 1
		if len(row) < n {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", errs.ErrColumnCount, line, len(row), n)
		}

		for c := range n {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d field %d: %q", errs.ErrMalformedRow, line, c+1, row[c])
			}
			cols[c] = append(cols[c], v)
		}
	}

	if len(cols[0]) == 0 {
		return nil, fmt.Errorf("%w: no measurement rows", errs.ErrEmptySeries)
	}

	return cols, nil
}

func isBlank(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}

	return true
}

// checkColumns verifies that caller-supplied columns are index-aligned and
// not empty.
func checkColumns(cols ...[]float64) error {
	n := len(cols[0])
	for _, col := range cols[1:] {
		if len(col) != n {
			return fmt.Errorf("%w: columns of %d and %d samples", errs.ErrLengthMismatch, n, len(col))
		}
	}
	if n == 0 {
		return fmt.Errorf("%w: no measurement rows", errs.ErrEmptySeries)
	}

	return nil
}

// fingerprint identifies a measurement by the values as parsed, before any
// transformation, so the same sweep has the same ID whether it was loaded
// from plain text, a compressed log, a workbook or raw columns.
func fingerprint(cols ...[]float64) uint64 {
	return hash.Columns(cols...)
}

func absAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Abs(v)
	}

	return out
}
