// Package plot renders sweep arms and their fitted lines as PNG or SVG charts.
//
// Rendering is a pure sink: nothing in the fitting pipeline reads a chart
// back. Charts are written to any io.Writer, so callers decide whether they
// land in a file, an HTTP response or a test buffer.
package plot

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/sweepfit/errs"
	"github.com/arloliu/sweepfit/internal/options"
	"github.com/arloliu/sweepfit/regression"
	"github.com/arloliu/sweepfit/sweep"
)

// FitPoints is the number of evenly spaced points the fitted line is drawn with.
const FitPoints = 1000

const (
	defaultWidth  = 1024
	defaultHeight = 640
)

// Axes holds the axis labels of a chart.
type Axes struct {
	X string
	Y string
}

type config struct {
	width  int
	height int
	svg    bool
	title  string
}

// Option configures a rendered chart.
type Option = options.Option[*config]

// WithSize sets the chart size in pixels. Non-positive values keep the default.
func WithSize(width, height int) Option {
	return options.NoError(func(c *config) {
		if width > 0 {
			c.width = width
		}
		if height > 0 {
			c.height = height
		}
	})
}

// WithSVG renders SVG instead of PNG.
func WithSVG() Option {
	return options.NoError(func(c *config) {
		c.svg = true
	})
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return options.NoError(func(c *config) {
		c.title = title
	})
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{width: defaultWidth, height: defaultHeight}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// pointStyle draws markers only, without a connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    3,
		DotColor:    col,
	}
}

// Fit renders the samples of c as points together with line, evaluated on
// FitPoints evenly spaced voltages from the first to the last sample.
// The line's legend entry reads "Slope = <slope> S/m".
func Fit(w io.Writer, c sweep.Curve, line regression.Line, axes Axes, opts ...Option) error {
	if err := checkCurve(c); err != nil {
		return err
	}

	xs := make([]float64, FitPoints)
	floats.Span(xs, c.V[0], c.V[c.Len()-1])
	ys := make([]float64, FitPoints)
	for i, x := range xs {
		ys[i] = line.Estimate(x)
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    fmt.Sprintf("Slope = %.2e S/m", line.Slope),
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: 2, StrokeColor: chart.ColorGreen},
		},
		chart.ContinuousSeries{
			Name:    "Experimental",
			XValues: c.V,
			YValues: c.I,
			Style:   pointStyle(chart.ColorBlue),
		},
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	return render(w, series, axes, cfg)
}

// Curve renders c as a connected line, the view used to pick regime limits
// by eye before narrowing.
func Curve(w io.Writer, c sweep.Curve, axes Axes, opts ...Option) error {
	if err := checkCurve(c); err != nil {
		return err
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Measured",
			XValues: c.V,
			YValues: c.I,
			Style:   chart.Style{StrokeWidth: 1.5, StrokeColor: chart.ColorBlue},
		},
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	return render(w, series, axes, cfg)
}

func checkCurve(c sweep.Curve) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Len() == 0 {
		return fmt.Errorf("%w: nothing to plot", errs.ErrEmptySeries)
	}

	return nil
}

func render(w io.Writer, series []chart.Series, axes Axes, cfg *config) error {
	ch := chart.Chart{
		Title:      cfg.title,
		Width:      cfg.width,
		Height:     cfg.height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: axes.X},
		YAxis:      chart.YAxis{Name: axes.Y},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	provider := chart.PNG
	if cfg.svg {
		provider = chart.SVG
	}

	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}
