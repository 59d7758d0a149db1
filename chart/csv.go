package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/sortlab/bench"
)

// csvHeader is the first CSV record.
var csvHeader = []string{"algorithm", "input", "size", "items", "elapsed_ns", "items_per_second"}

// WriteCSV writes one record per measurement, series after series.
func WriteCSV(w io.Writer, rep *bench.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	for _, s := range rep.Series {
		for _, p := range s.Points {
			rec := []string{
				s.Algorithm,
				s.Input.String(),
				strconv.Itoa(p.Size),
				strconv.Itoa(p.Items),
				strconv.FormatInt(p.Elapsed.Nanoseconds(), 10),
				strconv.FormatFloat(p.Throughput(), 'f', 3, 64),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("WriteCSV: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

// SaveCSV writes the CSV export of rep to path.
func SaveCSV(rep *bench.Report, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveCSV: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("SaveCSV: %w", cerr)
		}
	}()

	return WriteCSV(f, rep)
}
