// Package chart renders a bench.Report.
//
// 🚀 Outputs:
//   - PNG line chart (gonum/plot): one line per series, x = input size,
//     y = items per second, each series drawn with its plan marker.
//   - ASCII chart for the terminal: one bar per series at its largest size,
//     plus a size × algorithm throughput table.
//   - CSV: one row per measurement, for external tools.
//
// ✨ Markers (Trial.Marker):
//
//	o  ring       x  cross      ^  triangle
//	v  pyramid    s  square     +  plus      *  circle
//
// Any other marker falls back to the gonum/plot default shape for the
// series index.
//
// ⚙️ Usage:
//
//	if err := chart.SavePNG(report, "throughput.png"); err != nil { … }
//	_ = chart.WriteASCII(os.Stdout, report)
package chart
