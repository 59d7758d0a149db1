// Package bench is the benchmarking harness around package sorting.
//
// 🚀 What does it do?
//
//	For every Trial of a Plan it generates random inputs of growing size
//	(package builder), times one sort call per input, checks the output
//	(package verify) and records the throughput in items per second:
//
//	  generate → sort (timed) → verify → record
//
//	A post-condition violation stops the run at once; the returned error
//	matches verify.ErrPostcondition.
//
// ✨ Pieces:
//   - Plan / Trial      — what to run; DefaultPlan reproduces the classic
//     five-algorithm sweep, LoadPlan reads the same shape from YAML.
//   - Runner            — executes a Plan; clock, logger, progress output,
//     seed and algorithm set are injected with RunnerOption values.
//   - Report / Series   — the measurements, one Series per trial.
//   - Summary           — mean / stddev (gonum stat) and p50 / p90 (DDSketch)
//     of a Series' throughput.
//
// ⚙️ Usage:
//
//	r := bench.NewRunner(
//	  bench.WithLogger(logger),
//	  bench.WithProgress(bench.NewConsoleProgress(os.Stderr, clock.New())),
//	)
//	report, err := r.Run(bench.DefaultPlan())
//	if errors.Is(err, verify.ErrPostcondition) {
//	  // a sort is broken
//	}
//
// The harness is single-threaded: inputs are owned by exactly one sort call
// and discarded after verification.
package bench
