package bench

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/katalvlaran/sortlab/builder"
	"github.com/katalvlaran/sortlab/matrix"
	"github.com/katalvlaran/sortlab/sorting"
	"github.com/katalvlaran/sortlab/verify"
)

// Runner executes benchmark plans. It is not safe for concurrent use.
type Runner struct {
	clock      clock.Clock
	logger     *zap.Logger
	progress   Progress
	rng        *rand.Rand
	strict     bool
	algorithms map[string]sorting.Algorithm
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithClock sets the clock used to time sort calls. Panics on nil.
func WithClock(c clock.Clock) RunnerOption {
	if c == nil {
		panic("bench: WithClock(nil)")
	}
	return func(r *Runner) {
		r.clock = c
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) RunnerOption {
	if l == nil {
		panic("bench: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.logger = l
	}
}

// WithProgress sets the progress sink. Panics on nil.
func WithProgress(p Progress) RunnerOption {
	if p == nil {
		panic("bench: WithProgress(nil)")
	}
	return func(r *Runner) {
		r.progress = p
	}
}

// WithSeed fixes the input generator seed. 0 keeps the time-based default.
func WithSeed(seed int64) RunnerOption {
	return func(r *Runner) {
		if seed != 0 {
			r.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithStrict also verifies that every output is a permutation of its input.
// It costs one copy of each input, made outside the timed region.
func WithStrict(strict bool) RunnerOption {
	return func(r *Runner) {
		r.strict = strict
	}
}

// WithAlgorithms replaces the algorithm set resolved by trial names
// (case-insensitive). Panics on an entry without a name or without the sort matching its Input.
func WithAlgorithms(algs ...sorting.Algorithm) RunnerOption {
	set := make(map[string]sorting.Algorithm, len(algs))
	for _, a := range algs {
		if a.Name == "" {
			panic("bench: WithAlgorithms: algorithm without name")
		}
		if (a.Input == sorting.SequenceInput && a.Sequence == nil) || (a.Input == sorting.MatrixInput && a.Matrix == nil) {
			panic(fmt.Sprintf("bench: WithAlgorithms: %s has no %s sort", a.Name, a.Input))
		}
		set[strings.ToLower(a.Name)] = a
	}
	return func(r *Runner) {
		r.algorithms = set
	}
}

// NewRunner returns a Runner with the real clock, a no-op logger, no progress
// output, a time-seeded generator and the built-in algorithms.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		clock:    clock.New(),
		logger:   zap.NewNop(),
		progress: NopProgress(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.algorithms == nil {
		WithAlgorithms(sorting.All()...)(r)
	}

	return r
}

// lookup resolves a trial's algorithm name within the runner's set.
func (r *Runner) lookup(name string) (sorting.Algorithm, error) {
	if a, ok := r.algorithms[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}

	return sorting.Algorithm{}, fmt.Errorf("%q: %w", name, sorting.ErrUnknownAlgorithm)
}

// Run validates plan and executes its trials in order.
// The first post-condition violation aborts the run; the returned error
// matches verify.ErrPostcondition and the partial report is discarded.
func (r *Runner) Run(plan Plan) (*Report, error) {
	plan.fillLabels()
	if err := plan.validate(r.lookup); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	rep := &Report{Title: plan.Title, XLabel: plan.XLabel, YLabel: plan.YLabel}
	for i, t := range plan.Trials {
		alg, _ := r.lookup(t.Algorithm) // validated above
		series, err := r.runTrial(t, alg)
		if err != nil {
			r.logger.Error("trial failed",
				zap.Int("trial", i),
				zap.String("algorithm", alg.Name),
				zap.Error(err))
			return nil, fmt.Errorf("Run: trial %d (%s): %w", i, alg.Name, err)
		}
		rep.Series = append(rep.Series, series)
	}

	return rep, nil
}

// runTrial generates every input of t up front, then times, verifies and
// records one sort call per input.
func (r *Runner) runTrial(t Trial, alg sorting.Algorithm) (Series, error) {
	series := Series{Algorithm: alg.Name, Title: alg.Title, Input: alg.Input, Marker: t.Marker}
	gen := []builder.BuilderOption{builder.WithRand(r.rng), builder.WithMaxValue(t.maxValue())}

	r.logger.Info("trial started",
		zap.String("algorithm", alg.Name),
		zap.Stringer("input", alg.Input),
		zap.Int("min_size", t.MinSize),
		zap.Int("max_size", t.MaxSize),
		zap.Int("step", t.Step))

	var err error
	switch alg.Input {
	case sorting.MatrixInput:
		series.Points, err = r.runMatrices(t, alg, gen)
	default:
		series.Points, err = r.runSequences(t, alg, gen)
	}
	if err != nil {
		return Series{}, err
	}

	r.logger.Info("trial finished",
		zap.String("algorithm", alg.Name),
		zap.Int("inputs", len(series.Points)),
		zap.Duration("sort_time", series.Total()))

	return series, nil
}

// runSequences is the []int branch of runTrial.
func (r *Runner) runSequences(t Trial, alg sorting.Algorithm, gen []builder.BuilderOption) ([]Measurement, error) {
	inputs, err := builder.RandomSequences(t.MinSize, t.MaxSize, t.Step, gen...)
	if err != nil {
		return nil, err
	}

	points := make([]Measurement, 0, len(inputs))
	r.progress.Start(alg.Title+" testing", len(inputs))
	defer r.progress.Finish()

	var before []int
	for _, s := range inputs {
		if r.strict {
			before = append(before[:0], s...)
		}

		start := r.clock.Now()
		alg.Sequence(s)
		elapsed := r.clock.Since(start)

		if err = verify.Sorted(alg.Name, s); err != nil {
			return nil, err
		}
		if r.strict {
			if err = verify.Permutation(alg.Name, before, s); err != nil {
				return nil, err
			}
		}
		points = append(points, r.record(alg, len(s), len(s), elapsed))
	}

	return points, nil
}

// runMatrices is the matrix.Dense branch of runTrial. The item count of a
// matrix is its number of rows.
func (r *Runner) runMatrices(t Trial, alg sorting.Algorithm, gen []builder.BuilderOption) ([]Measurement, error) {
	inputs, err := builder.RandomMatrices(t.MinSize, t.MaxSize, t.Step, gen...)
	if err != nil {
		return nil, err
	}

	points := make([]Measurement, 0, len(inputs))
	r.progress.Start(alg.Title+" testing", len(inputs))
	defer r.progress.Finish()

	var before matrix.Dense
	for _, m := range inputs {
		if r.strict {
			before = m.Clone()
		}

		start := r.clock.Now()
		alg.Matrix(m)
		elapsed := r.clock.Since(start)

		if err = verify.SortedMatrix(alg.Name, m); err != nil {
			return nil, err
		}
		if r.strict {
			if err = verify.ColumnPermutation(alg.Name, before, m); err != nil {
				return nil, err
			}
		}
		points = append(points, r.record(alg, m.Size(), m.Size(), elapsed))
	}

	return points, nil
}

// record builds a Measurement, logs it and advances the progress bar.
func (r *Runner) record(alg sorting.Algorithm, size, items int, elapsed time.Duration) Measurement {
	m := Measurement{Size: size, Items: items, Elapsed: elapsed}
	r.logger.Debug("measurement",
		zap.String("algorithm", alg.Name),
		zap.Int("size", size),
		zap.Duration("elapsed", elapsed),
		zap.Float64("items_per_second", m.Throughput()))
	r.progress.Advance()

	return m
}
