package chart

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/sortlab/bench"
)

// Default PNG canvas.
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// Option customizes PNG rendering.
type Option func(*config)

type config struct {
	width, height vg.Length
}

// WithSize sets the canvas size. Panics if either side is not positive.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("chart: WithSize(%v, %v): sides must be > 0", width, height))
	}
	return func(c *config) {
		c.width, c.height = width, height
	}
}

func newConfig(opts ...Option) config {
	c := config{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// glyphs maps plan markers to gonum/plot glyphs.
var glyphs = map[string]draw.GlyphDrawer{
	"o": draw.RingGlyph{},
	"x": draw.CrossGlyph{},
	"^": draw.TriangleGlyph{},
	"v": draw.PyramidGlyph{},
	"s": draw.SquareGlyph{},
	"+": draw.PlusGlyph{},
	"*": draw.CircleGlyph{},
}

// Glyph returns the glyph for marker, or the default shape of series i.
func Glyph(marker string, i int) draw.GlyphDrawer {
	if g, ok := glyphs[marker]; ok {
		return g
	}

	return plotutil.Shape(i)
}

// PlainTicks places ticks like plot.DefaultTicks but labels them in plain
// decimal notation ("2000000", never "2e+06").
type PlainTicks struct{}

var _ plot.Ticker = PlainTicks{}

// Ticks implements plot.Ticker. Minor ticks stay unlabelled.
func (PlainTicks) Ticks(lo, hi float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(lo, hi)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = strconv.FormatFloat(ticks[i].Value, 'f', -1, 64)
		}
	}

	return ticks
}

// New builds the throughput line chart of rep.
// Series without points are left out; ErrEmptyReport if none remain.
func New(rep *bench.Report) (*plot.Plot, error) {
	if !hasPoints(rep) {
		return nil, ErrEmptyReport
	}
	p := plot.New()
	p.Title.Text = rep.Title
	p.X.Label.Text = rep.XLabel
	p.Y.Label.Text = rep.YLabel
	p.X.Tick.Marker = PlainTicks{}
	p.Y.Tick.Marker = PlainTicks{}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for i, s := range rep.Series {
		if len(s.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.Points))
		for j, m := range s.Points {
			xys[j].X = float64(m.Size)
			xys[j].Y = m.Throughput()
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("New: series %s: %w", s.Algorithm, err)
		}
		c := plotutil.Color(i)
		line.LineStyle.Color = c
		points.GlyphStyle.Color = c
		points.GlyphStyle.Shape = Glyph(s.Marker, i)

		p.Add(line, points)
		p.Legend.Add(s.Title, line, points)
	}

	return p, nil
}

// WritePNG renders rep as a PNG image to w.
func WritePNG(w io.Writer, rep *bench.Report, opts ...Option) error {
	cfg := newConfig(opts...)
	p, err := New(rep)
	if err != nil {
		return fmt.Errorf("WritePNG: %w", err)
	}
	wt, err := p.WriterTo(cfg.width, cfg.height, "png")
	if err != nil {
		return fmt.Errorf("WritePNG: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("WritePNG: %w", err)
	}

	return nil
}

// SavePNG writes the PNG chart of rep to path, whatever its extension.
// No file is created for an empty report.
func SavePNG(rep *bench.Report, path string, opts ...Option) (err error) {
	if !hasPoints(rep) {
		return fmt.Errorf("SavePNG: %w", ErrEmptyReport)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SavePNG: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("SavePNG: %w", cerr)
		}
	}()

	return WritePNG(f, rep, opts...)
}
