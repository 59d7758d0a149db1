// SPDX-License-Identifier: MIT
// Package: sortlab/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig instance
// before generation begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
// Generators share and advance r, so successive calls produce different data.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxValue sets the inclusive upper bound of generated values.
// Panics if limit < 0 (there is no value to draw).
func WithMaxValue(limit int) BuilderOption {
	if limit < 0 {
		panic(fmt.Sprintf("%s(%d): %v", MethodValueRange, limit, ErrBadMaxValue))
	}
	return func(c *builderConfig) {
		c.maxValue = limit
	}
}
