package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/fatih/color"
)

// progressBarWidth is the number of cells in the console bar.
const progressBarWidth = 30

// Progress receives per-input progress of a trial.
// Start is called once per trial, Advance once per finished input, Finish once at the end.
type Progress interface {
	Start(desc string, total int)
	Advance()
	Finish()
}

// NopProgress discards all progress.
func NopProgress() Progress { return nopProgress{} }

type nopProgress struct{}

func (nopProgress) Start(string, int) {}
func (nopProgress) Advance()          {}
func (nopProgress) Finish()           {}

// consoleProgress redraws a single line:
//
//	Insertion sort testing:  45% |█████████████                 | 13/29 [1.2s]
type consoleProgress struct {
	w     io.Writer
	clk   clock.Clock
	label *color.Color
	bar   *color.Color

	desc  string
	total int
	done  int
	start time.Time
}

// NewConsoleProgress writes a carriage-return redrawn bar to w.
// Colours follow color.NoColor, so piping to a file yields plain text.
func NewConsoleProgress(w io.Writer, clk clock.Clock) Progress {
	if w == nil {
		panic("bench: NewConsoleProgress(nil writer)")
	}
	if clk == nil {
		panic("bench: NewConsoleProgress(nil clock)")
	}

	return &consoleProgress{
		w:     w,
		clk:   clk,
		label: color.New(color.FgCyan, color.Bold),
		bar:   color.New(color.FgGreen),
	}
}

func (p *consoleProgress) Start(desc string, total int) {
	p.desc, p.total, p.done = desc, total, 0
	p.start = p.clk.Now()
	p.draw()
}

func (p *consoleProgress) Advance() {
	if p.done < p.total {
		p.done++
	}
	p.draw()
}

func (p *consoleProgress) Finish() {
	p.draw()
	fmt.Fprintln(p.w)
}

func (p *consoleProgress) draw() {
	frac := 1.0
	if p.total > 0 {
		frac = float64(p.done) / float64(p.total)
	}
	filled := int(frac * progressBarWidth)
	cells := strings.Repeat("█", filled) + strings.Repeat(" ", progressBarWidth-filled)
	elapsed := p.clk.Since(p.start).Round(100 * time.Millisecond)

	fmt.Fprintf(p.w, "\r%s: %3d%% |%s| %d/%d [%s]",
		p.label.Sprint(p.desc), int(frac*100), p.bar.Sprint(cells), p.done, p.total, elapsed)
}
