// Package chart renders mood series as line and bar charts.
package chart

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Flyrell/moodchart/internal/stats"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is the output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ErrNoData is returned when a chart has nothing to plot.
var ErrNoData = errors.New("no data to plot")

var (
	primaryColor = drawing.ColorFromHex("FF8C00")
	gridColor    = drawing.ColorFromHex("E8E8E8")
)

// Options control the size and format of rendered charts.
type Options struct {
	Width  int
	Height int
	Format Format
}

// LineChart is a time series with one tick per calendar month.
type LineChart struct {
	Title  string
	Legend string
	XLabel string
	YLabel string
	Points []stats.Point
	Ticks  []stats.MonthTick
}

// Bar is a single labelled bar.
type Bar struct {
	Label string
	Value float64
}

// BarChart is a sequence of labelled bars.
type BarChart struct {
	Title  string
	XLabel string
	YLabel string
	Bars   []Bar
	// RotateLabels tilts the X labels, for long labels such as full dates.
	RotateLabels bool
}

// Chart is a line or bar chart the Renderer can draw.
type Chart interface {
	ChartTitle() string
}

// ChartTitle returns the chart's title.
func (c LineChart) ChartTitle() string { return c.Title }

// ChartTitle returns the chart's title.
func (c BarChart) ChartTitle() string { return c.Title }

// Renderer draws charts with fixed options.
type Renderer struct {
	opts     Options
	provider gochart.RendererProvider
}

// NewRenderer validates opts and returns a Renderer.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid chart size %dx%d", opts.Width, opts.Height)
	}

	var provider gochart.RendererProvider
	switch opts.Format {
	case FormatPNG:
		provider = gochart.PNG
	case FormatSVG:
		provider = gochart.SVG
	default:
		return nil, fmt.Errorf("unsupported chart format %q (supported: png, svg)", opts.Format)
	}

	return &Renderer{opts: opts, provider: provider}, nil
}

// Extension returns the file extension for rendered charts, without the dot.
func (r *Renderer) Extension() string {
	return string(r.opts.Format)
}

// Format returns the configured output format.
func (r *Renderer) Format() Format {
	return r.opts.Format
}

// Options returns the renderer's options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render writes any supported chart to w.
func (r *Renderer) Render(w io.Writer, c Chart) error {
	switch c := c.(type) {
	case LineChart:
		return r.RenderLine(w, c)
	case BarChart:
		return r.RenderBar(w, c)
	default:
		return fmt.Errorf("unsupported chart type %T", c)
	}
}

// RenderLine writes c to w.
func (r *Renderer) RenderLine(w io.Writer, c LineChart) error {
	if len(c.Points) == 0 {
		return fmt.Errorf("%s: %w", c.Title, ErrNoData)
	}

	xs := make([]time.Time, len(c.Points))
	ys := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xs[i] = p.Date
		ys[i] = p.Value
	}

	// go-chart needs a non-zero X range.
	if last := len(xs) - 1; xs[0].Equal(xs[last]) {
		xs = append(xs, xs[last].Add(24*time.Hour))
		ys = append(ys, ys[last])
	}

	ticks := make([]gochart.Tick, len(c.Ticks))
	for i, t := range c.Ticks {
		ticks[i] = gochart.Tick{Value: float64(gochart.TimeToFloat64(t.Date)), Label: t.Label}
	}

	lo, hi := valueRange(ys)
	graph := gochart.Chart{
		Title:  c.Title,
		Width:  r.opts.Width,
		Height: r.opts.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 24, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:      c.XLabel,
			Ticks:     ticks,
			TickStyle: gochart.Style{TextRotationDegrees: 45},
		},
		YAxis: gochart.YAxis{
			Name:           c.YLabel,
			Range:          &gochart.ContinuousRange{Min: lo, Max: hi},
			GridMajorStyle: gochart.Style{StrokeColor: gridColor, StrokeWidth: 1},
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    c.Legend,
				XValues: xs,
				YValues: ys,
				Style:   gochart.Style{StrokeColor: primaryColor, StrokeWidth: 2},
			},
		},
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	if err := graph.Render(r.provider, w); err != nil {
		return fmt.Errorf("rendering %q: %w", c.Title, err)
	}
	return nil
}

// RenderBar writes c to w.
func (r *Renderer) RenderBar(w io.Writer, c BarChart) error {
	if len(c.Bars) == 0 {
		return fmt.Errorf("%s: %w", c.Title, ErrNoData)
	}

	values := make([]float64, len(c.Bars))
	bars := make([]gochart.Value, len(c.Bars))
	for i, b := range c.Bars {
		values[i] = b.Value
		bars[i] = gochart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: gochart.Style{FillColor: primaryColor, StrokeColor: primaryColor},
		}
	}

	lo, hi := valueRange(values)
	lo = min(lo, 0)

	xStyle := gochart.Style{}
	if c.RotateLabels {
		xStyle.TextRotationDegrees = 45
	}

	graph := gochart.BarChart{
		Title:  c.Title,
		Width:  r.opts.Width,
		Height: r.opts.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		BarWidth:     r.barWidth(len(bars)),
		XAxis:        xStyle,
		YAxis:        gochart.YAxis{Name: c.YLabel, Range: &gochart.ContinuousRange{Min: lo, Max: hi}},
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}

	if err := graph.Render(r.provider, w); err != nil {
		return fmt.Errorf("rendering %q: %w", c.Title, err)
	}
	return nil
}

// barWidth spreads n bars over roughly half of the canvas width.
func (r *Renderer) barWidth(n int) int {
	w := (r.opts.Width - 160) / (2 * n)
	return max(10, min(60, w))
}

// valueRange returns a non-empty range covering values.
func valueRange(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi > lo {
		return lo, hi
	}
	lo, hi = lo-1, hi+1
	if values[0] >= 0 && lo < 0 {
		lo = 0
	}
	return lo, hi
}
