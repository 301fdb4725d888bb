package device

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/arloliu/sweepfit/errs"
	"github.com/arloliu/sweepfit/ingest"
	"github.com/arloliu/sweepfit/internal/options"
)

// DefaultZeroTolerance is the largest gate voltage magnitude treated as zero
// when locating the zero-bias sample of a transfer sweep.
const DefaultZeroTolerance = 1e-5

type config struct {
	logger        *slog.Logger
	reader        ingest.RowReader
	delimiter     string
	zeroTolerance float64
}

func defaultConfig() *config {
	return &config{
		logger:        slog.New(slog.DiscardHandler),
		delimiter:     ingest.DefaultDelimiter,
		zeroTolerance: DefaultZeroTolerance,
	}
}

func newConfig(opts []Option) (*config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) rowReader() ingest.RowReader {
	if c.reader != nil {
		return c.reader
	}

	return ingest.NewFileReader(c.delimiter)
}

// Option configures how a device model is loaded and evaluated.
type Option = options.Option[*config]

// WithLogger sets the logger that receives load, segmentation and narrowing
// events at debug level. A nil logger keeps the default, which discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithRowReader replaces the file reader used by the path-based constructors.
// WithDelimiter has no effect on a custom reader.
func WithRowReader(reader ingest.RowReader) Option {
	return options.New(func(c *config) error {
		if reader == nil {
			return fmt.Errorf("%w: nil row reader", errs.ErrInvalidOption)
		}
		c.reader = reader

		return nil
	})
}

// WithDelimiter sets the field delimiter of the default file reader.
func WithDelimiter(delimiter string) Option {
	return options.New(func(c *config) error {
		if delimiter == "" {
			return fmt.Errorf("%w: empty delimiter", errs.ErrInvalidOption)
		}
		c.delimiter = delimiter

		return nil
	})
}

// WithZeroTolerance sets the zero-bias tolerance used by Transfer.Reliability.
func WithZeroTolerance(tolerance float64) Option {
	return options.New(func(c *config) error {
		if !(tolerance > 0) || math.IsInf(tolerance, 1) {
			return fmt.Errorf("%w: zero tolerance must be positive and finite, got %g", errs.ErrInvalidOption, tolerance)
		}
		c.zeroTolerance = tolerance

		return nil
	})
}
