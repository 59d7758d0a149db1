package bench_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/bench"
)

func TestConsoleProgress(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	mock := clock.NewMock()
	p := bench.NewConsoleProgress(&buf, mock)

	p.Start("Quick sort testing", 4)
	assert.Contains(t, buf.String(), "Quick sort testing:   0% |")
	assert.Contains(t, buf.String(), "| 0/4 [0s]")

	mock.Add(1500 * time.Millisecond)
	p.Advance()
	p.Advance()
	frames := strings.Split(buf.String(), "\r")
	last := frames[len(frames)-1]
	assert.True(t, strings.HasPrefix(last, "Quick sort testing:  50% |"), last)
	assert.Contains(t, last, "| 2/4 [1.5s]")
	assert.Equal(t, 15, strings.Count(last, "█"))

	p.Advance()
	p.Advance()
	p.Advance() // past total is ignored
	p.Finish()
	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "100% |"+strings.Repeat("█", 30)+"| 4/4")
	assert.NotContains(t, out, "5/4")
}

func TestConsoleProgress_EmptyTrial(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	p := bench.NewConsoleProgress(&buf, clock.NewMock())
	p.Start("Column sort testing", 0)
	p.Finish()
	assert.Contains(t, buf.String(), "100% |")
	assert.Contains(t, buf.String(), "0/0")
}

func TestNewConsoleProgress_Panics(t *testing.T) {
	require.Panics(t, func() { bench.NewConsoleProgress(nil, clock.NewMock()) })
	require.Panics(t, func() { bench.NewConsoleProgress(&bytes.Buffer{}, nil) })
}

func TestNopProgress(t *testing.T) {
	p := bench.NopProgress()
	require.NotPanics(t, func() {
		p.Start("x", 3)
		p.Advance()
		p.Finish()
	})
}
