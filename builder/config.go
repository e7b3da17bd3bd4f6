// SPDX-License-Identifier: MIT
// Package: trustnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn                = ProviderIDFn   ("P00","P01",...)
//   • rng                 = nil            (WithSeed/WithRand required)
//   • liveDegree          = false          (in-degree picker snapshotted once)
//   • servicesPerProvider = 0              (draw sizes with sampling.ServiceCount)

package builder

import "github.com/katalvlaran/trustnet/sampling"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> provider name (deterministic).
	idFn IDFn
	// Random state for every stochastic choice; nil means "not configured".
	rng *sampling.Rand
	// liveDegree rebuilds the proportional picker on each rewiring step.
	liveDegree bool
	// servicesPerProvider fixes the subset size when > 0.
	servicesPerProvider int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: ProviderIDFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
