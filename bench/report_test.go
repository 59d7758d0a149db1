package bench_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/bench"
)

func TestMeasurement_Throughput(t *testing.T) {
	m := bench.Measurement{Size: 500, Items: 500, Elapsed: 250 * time.Millisecond}
	assert.InDelta(t, 2000.0, m.Throughput(), 1e-9)

	// A zero reading is clamped to one nanosecond.
	zero := bench.Measurement{Size: 3, Items: 3}
	assert.False(t, math.IsInf(zero.Throughput(), 0))
	assert.InDelta(t, 3e9, zero.Throughput(), 1e-3)
}

func TestSeries_Accessors(t *testing.T) {
	s := bench.Series{Points: []bench.Measurement{
		{Size: 10, Items: 10, Elapsed: 10 * time.Millisecond},
		{Size: 20, Items: 20, Elapsed: 40 * time.Millisecond},
	}}
	assert.Equal(t, []float64{10, 20}, s.Sizes())
	assert.InDeltaSlice(t, []float64{1000, 500}, s.Throughputs(), 1e-9)
	assert.Equal(t, 50*time.Millisecond, s.Total())
}

func TestSeries_Summarize(t *testing.T) {
	s := bench.Series{Algorithm: "quick", Title: "Quick sort"}
	var i int
	for i = 1; i <= 10; i++ {
		// throughput i*100 items/s
		s.Points = append(s.Points, bench.Measurement{Size: i, Items: i * 100, Elapsed: time.Second})
	}

	sum, err := s.Summarize()
	require.NoError(t, err)
	assert.Equal(t, "quick", sum.Algorithm)
	assert.Equal(t, "Quick sort", sum.Title)
	assert.Equal(t, 10, sum.Count)
	assert.InDelta(t, 550.0, sum.Mean, 1e-9)
	assert.InDelta(t, 302.765, sum.StdDev, 1e-3) // sample standard deviation
	assert.Equal(t, 100.0, sum.Min)
	assert.Equal(t, 1000.0, sum.Max)
	assert.InEpsilon(t, 500.0, sum.P50, 0.02)
	assert.InEpsilon(t, 900.0, sum.P90, 0.02)
}

func TestSeries_SummarizeEdgeCases(t *testing.T) {
	empty, err := bench.Series{Algorithm: "bubble"}.Summarize()
	require.NoError(t, err)
	assert.Equal(t, bench.Summary{Algorithm: "bubble"}, empty)

	one, err := bench.Series{Points: []bench.Measurement{{Size: 4, Items: 4, Elapsed: time.Second}}}.Summarize()
	require.NoError(t, err)
	assert.Equal(t, 1, one.Count)
	assert.Equal(t, 4.0, one.Mean)
	assert.Zero(t, one.StdDev)
	assert.Equal(t, 4.0, one.Min)
	assert.Equal(t, 4.0, one.Max)
}

func TestReport_Summaries(t *testing.T) {
	rep := &bench.Report{Series: []bench.Series{
		{Algorithm: "a", Points: []bench.Measurement{{Size: 1, Items: 1, Elapsed: time.Second}}},
		{Algorithm: "b"},
	}}
	sums, err := rep.Summaries()
	require.NoError(t, err)
	require.Len(t, sums, 2)
	assert.Equal(t, "a", sums[0].Algorithm)
	assert.Equal(t, 0, sums[1].Count)
}
