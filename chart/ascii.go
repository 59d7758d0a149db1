package chart

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/sortlab/bench"
)

// asciiBarWidth is the length of the longest bar.
const asciiBarWidth = 60

// WriteASCII prints rep for a terminal: one bar per series at its largest
// input, then a table of throughput per size and algorithm.
func WriteASCII(w io.Writer, rep *bench.Report) error {
	if !hasPoints(rep) {
		return fmt.Errorf("WriteASCII: %w", ErrEmptyReport)
	}

	fmt.Fprintf(w, "=== %s ===\n\n", rep.Title)
	writeBars(w, rep)
	fmt.Fprintln(w)
	writeGrid(w, rep)

	return nil
}

// writeBars draws the last point of every non-empty series, scaled to the fastest.
func writeBars(w io.Writer, rep *bench.Report) {
	var peak float64
	nameWidth := 0
	for _, s := range rep.Series {
		if len(s.Points) == 0 {
			continue
		}
		peak = math.Max(peak, s.Points[len(s.Points)-1].Throughput())
		if len(s.Title) > nameWidth {
			nameWidth = len(s.Title)
		}
	}

	fmt.Fprintf(w, "Largest input per series (%d chars = %s)\n", asciiBarWidth, formatRate(peak))
	for _, s := range rep.Series {
		if len(s.Points) == 0 {
			continue
		}
		last := s.Points[len(s.Points)-1]
		n := 0
		if peak > 0 {
			n = int(math.Round(last.Throughput() / peak * asciiBarWidth))
		}
		fmt.Fprintf(w, "%-*s │%s %s (n=%d)\n",
			nameWidth, s.Title, strings.Repeat("█", n), formatRate(last.Throughput()), last.Size)
	}
}

// writeGrid renders a size × series table; missing cells are "-".
func writeGrid(w io.Writer, rep *bench.Report) {
	var (
		sizes  []int
		seen   = make(map[int]bool)
		header = []string{rep.XLabel}
		cells  = make([]map[int]float64, 0, len(rep.Series))
	)
	for _, s := range rep.Series {
		header = append(header, s.Title)
		col := make(map[int]float64, len(s.Points))
		for _, p := range s.Points {
			col[p.Size] = p.Throughput()
			if !seen[p.Size] {
				seen[p.Size] = true
				sizes = append(sizes, p.Size)
			}
		}
		cells = append(cells, col)
	}
	sort.Ints(sizes)

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, n := range sizes {
		row := []string{strconv.Itoa(n)}
		for _, col := range cells {
			v, ok := col[n]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, formatRate(v))
		}
		table.Append(row)
	}
	table.Render()
}

// WriteSummary prints one row per summary.
func WriteSummary(w io.Writer, sums []bench.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Inputs", "Mean", "StdDev", "P50", "P90", "Min", "Max"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, s := range sums {
		if s.Count == 0 {
			table.Append([]string{s.Title, "0", "-", "-", "-", "-", "-", "-"})
			continue
		}
		table.Append([]string{
			s.Title,
			humanize.Comma(int64(s.Count)),
			formatRate(s.Mean),
			formatRate(s.StdDev),
			formatRate(s.P50),
			formatRate(s.P90),
			formatRate(s.Min),
			formatRate(s.Max),
		})
	}
	table.Render()
}

// formatRate renders items/s with an SI prefix, e.g. "1.25 M/s".
func formatRate(v float64) string {
	return humanize.SIWithDigits(v, 2, "/s")
}

// hasPoints reports whether any series of rep holds a measurement.
func hasPoints(rep *bench.Report) bool {
	if rep == nil {
		return false
	}
	for _, s := range rep.Series {
		if len(s.Points) > 0 {
			return true
		}
	}

	return false
}
