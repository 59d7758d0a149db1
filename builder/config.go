// SPDX-License-Identifier: MIT
// Package: sortlab/builder
//
// config.go — internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng       = seeded from the wall clock (fresh data every run)
//   • maxValue  = DefaultMaxValue (100000)

package builder

import (
	"math/rand"
	"time"
)

// DefaultMaxValue is the inclusive upper bound of generated values.
const DefaultMaxValue = 100_000

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	rng      *rand.Rand // source of every draw; never nil after newBuilderConfig
	maxValue int        // inclusive upper bound, >= 0
}

// newBuilderConfig constructs a config with defaults and applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxValue: DefaultMaxValue,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// No explicit RNG: use a time-seeded one, like an unseeded randint.
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// draw returns one value in [0, cfg.maxValue].
func (cfg builderConfig) draw() int {
	return cfg.rng.Intn(cfg.maxValue + 1)
}
