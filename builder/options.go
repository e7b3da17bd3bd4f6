// SPDX-License-Identifier: MIT
// Package: trustnet/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
package builder

import "github.com/katalvlaran/trustnet/sampling"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic provider naming function: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithNamePattern names providers through a fmt pattern, e.g. "node%d".
// Panics on an empty pattern.
func WithNamePattern(pattern string) BuilderOption {
	return WithIDScheme(PatternIDFn(pattern))
}

// WithRand provides explicit random state for stochastic builders.
// The builder consumes draws from r; do not share r across goroutines.
// Panics on nil.
func WithRand(r *sampling.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates fresh random state with the given seed (deterministic).
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) { c.rng = sampling.New(seed) }
}

// WithLiveDegree makes the rewiring target picker follow the current
// in-degrees on every iteration instead of the snapshot taken after the
// skeleton phase.
func WithLiveDegree() BuilderOption {
	return func(c *builderConfig) { c.liveDegree = true }
}

// WithServicesPerProvider fixes the number of services each provider supplies
// instead of drawing it. Panics if k < 1; a k above the catalog size is
// reported by the constructor as ErrSubsetTooLarge.
func WithServicesPerProvider(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithServicesPerProvider(k<1)")
	}

	return func(c *builderConfig) { c.servicesPerProvider = k }
}
