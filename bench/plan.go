package bench

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sortlab/builder"
	"github.com/katalvlaran/sortlab/sorting"
)

// Chart labels of the default plan.
const (
	DefaultTitle  = "Average Iterations Per Second vs Array Size"
	DefaultXLabel = "Array length"
	DefaultYLabel = "Items per second"
)

// Trial is one algorithm swept over a half-open size range.
type Trial struct {
	Algorithm string `yaml:"algorithm"`           // registry name, e.g. "quick"
	Input     string `yaml:"input,omitempty"`     // "sequence" or "matrix"; empty = the algorithm's own
	MinSize   int    `yaml:"min_size"`            // first size (inclusive)
	MaxSize   int    `yaml:"max_size"`            // last size (exclusive)
	Step      int    `yaml:"step"`                // size increment, > 0
	MaxValue  int    `yaml:"max_value,omitempty"` // inclusive value bound; 0 = builder.DefaultMaxValue
	Marker    string `yaml:"marker,omitempty"`    // chart marker: o x ^ v s + *
}

// Plan is an ordered list of trials plus chart labels.
type Plan struct {
	Title  string  `yaml:"title,omitempty"`
	XLabel string  `yaml:"x_label,omitempty"`
	YLabel string  `yaml:"y_label,omitempty"`
	Trials []Trial `yaml:"trials"`
}

// DefaultPlan is the fixed benchmark: four sequence sorts over lengths
// 100..2900 and the column sort over sides 10..90, values in [0, 100000].
func DefaultPlan() Plan {
	seq := func(name, marker string) Trial {
		return Trial{Algorithm: name, Input: "sequence", MinSize: 100, MaxSize: 3000, Step: 100, MaxValue: builder.DefaultMaxValue, Marker: marker}
	}

	return Plan{
		Title:  DefaultTitle,
		XLabel: DefaultXLabel,
		YLabel: DefaultYLabel,
		Trials: []Trial{
			seq("insertion", "o"),
			seq("selection", "x"),
			{Algorithm: "column", Input: "matrix", MinSize: 10, MaxSize: 100, Step: 10, MaxValue: builder.DefaultMaxValue, Marker: "^"},
			seq("bubble", "v"),
			seq("quick", "s"),
		},
	}
}

// LoadPlan reads and validates a YAML plan file.
func LoadPlan(path string) (Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return Plan{}, fmt.Errorf("LoadPlan: %w", err)
	}
	defer f.Close()

	p, err := DecodePlan(f)
	if err != nil {
		return Plan{}, fmt.Errorf("LoadPlan(%s): %w", path, err)
	}

	return p, nil
}

// DecodePlan parses a YAML plan, fills default labels and validates it.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func DecodePlan(r io.Reader) (Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return Plan{}, fmt.Errorf("empty document: %w", ErrBadPlan)
		}
		return Plan{}, fmt.Errorf("decode: %w", err)
	}
	p.fillLabels()
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}

	return p, nil
}

// Encode writes p as YAML.
func (p Plan) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("Plan.Encode: %w", err)
	}

	return enc.Close()
}

// fillLabels replaces empty chart labels with the defaults.
func (p *Plan) fillLabels() {
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.XLabel == "" {
		p.XLabel = DefaultXLabel
	}
	if p.YLabel == "" {
		p.YLabel = DefaultYLabel
	}
}

// Validate checks every trial against the built-in registry and reports
// all problems at once.
func (p Plan) Validate() error {
	return p.validate(sorting.Lookup)
}

// validate checks p using lookup to resolve algorithm names.
// Every problem wraps ErrBadPlan; they are aggregated with multierror.
func (p Plan) validate(lookup func(string) (sorting.Algorithm, error)) error {
	var result *multierror.Error
	if len(p.Trials) == 0 {
		result = multierror.Append(result, fmt.Errorf("no trials: %w", ErrBadPlan))
	}
	for i, t := range p.Trials {
		alg, err := lookup(t.Algorithm)
		if err != nil {
			result = multierror.Append(result, planErrorf(i, t.Algorithm, "%v", err))
		} else if t.Input != "" {
			in, err := sorting.ParseInput(t.Input)
			switch {
			case err != nil:
				result = multierror.Append(result, planErrorf(i, t.Algorithm, "%v", err))
			case in != alg.Input:
				result = multierror.Append(result, planErrorf(i, t.Algorithm, "input %q, algorithm sorts %s", t.Input, alg.Input))
			}
		}
		if _, err := builder.CountSizes(t.MinSize, t.MaxSize, t.Step); err != nil {
			result = multierror.Append(result, planErrorf(i, t.Algorithm, "%v", err))
		}
		if t.MaxValue < 0 {
			result = multierror.Append(result, planErrorf(i, t.Algorithm, "max_value %d", t.MaxValue))
		}
	}

	return result.ErrorOrNil()
}

// maxValue resolves the zero value to the builder default.
func (t Trial) maxValue() int {
	if t.MaxValue == 0 {
		return builder.DefaultMaxValue
	}

	return t.MaxValue
}
