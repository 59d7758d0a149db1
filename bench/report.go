package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/DataDog/sketches-go/ddsketch"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sortlab/sorting"
)

// sketchAccuracy is the relative accuracy of the throughput quantiles.
const sketchAccuracy = 0.01

// minElapsed bounds the denominator of Throughput so a too-coarse clock
// cannot produce +Inf.
const minElapsed = time.Nanosecond

// Measurement is one timed sort call.
type Measurement struct {
	Size    int           // sequence length or matrix side
	Items   int           // item count used for throughput
	Elapsed time.Duration // wall time of the sort call only
}

// Throughput returns Items per second of Elapsed.
func (m Measurement) Throughput() float64 {
	d := m.Elapsed
	if d < minElapsed {
		d = minElapsed
	}

	return float64(m.Items) / d.Seconds()
}

// Series holds the measurements of one trial, in increasing size order.
type Series struct {
	Algorithm string        // registry name
	Title     string        // legend label, e.g. "Quick sort"
	Input     sorting.Input // sequence or matrix
	Marker    string        // chart marker
	Points    []Measurement
}

// Sizes returns the x values of the series.
func (s Series) Sizes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = float64(p.Size)
	}

	return out
}

// Throughputs returns the y values of the series.
func (s Series) Throughputs() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Throughput()
	}

	return out
}

// Total returns the summed sort time of the series.
func (s Series) Total() time.Duration {
	var d time.Duration
	for _, p := range s.Points {
		d += p.Elapsed
	}

	return d
}

// Report is the outcome of a Runner.Run.
type Report struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Summary condenses the throughput of one Series.
type Summary struct {
	Algorithm string
	Title     string
	Count     int
	Mean      float64 // items/s
	StdDev    float64 // items/s, 0 for fewer than two points
	P50       float64 // items/s, relative accuracy sketchAccuracy
	P90       float64 // items/s, relative accuracy sketchAccuracy
	Min       float64 // items/s
	Max       float64 // items/s
}

// Summarize computes the Summary of s. An empty series yields a zero Summary.
func (s Series) Summarize() (Summary, error) {
	out := Summary{Algorithm: s.Algorithm, Title: s.Title, Count: len(s.Points)}
	if len(s.Points) == 0 {
		return out, nil
	}

	xs := s.Throughputs()
	if len(xs) > 1 {
		out.Mean, out.StdDev = stat.MeanStdDev(xs, nil)
	} else {
		out.Mean = xs[0]
	}

	sketch, err := ddsketch.NewDefaultDDSketch(sketchAccuracy)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize(%s): %w", s.Algorithm, err)
	}
	out.Min, out.Max = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if err = sketch.Add(x); err != nil {
			return Summary{}, fmt.Errorf("Summarize(%s): %w", s.Algorithm, err)
		}
		out.Min = math.Min(out.Min, x)
		out.Max = math.Max(out.Max, x)
	}
	qs, err := sketch.GetValuesAtQuantiles([]float64{0.5, 0.9})
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize(%s): %w", s.Algorithm, err)
	}
	out.P50, out.P90 = qs[0], qs[1]

	return out, nil
}

// Summaries returns one Summary per series, in report order.
func (r *Report) Summaries() ([]Summary, error) {
	out := make([]Summary, 0, len(r.Series))
	for _, s := range r.Series {
		sum, err := s.Summarize()
		if err != nil {
			return nil, err
		}
		out = append(out, sum)
	}

	return out, nil
}
