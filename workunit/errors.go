// SPDX-License-Identifier: MIT
package workunit

import "errors"

var (
	// ErrBadDepth indicates a collection depth of 1 or less.
	ErrBadDepth = errors.New("workunit: depth must be greater than 1")

	// ErrBadSimilarity indicates a similarity threshold outside (0,1].
	ErrBadSimilarity = errors.New("workunit: minimum similarity must be in (0,1]")

	// ErrPlanTooSmall indicates a plan with fewer than two distinct services.
	ErrPlanTooSmall = errors.New("workunit: plan needs at least two distinct services")

	// ErrTooFewProviders indicates scoring a unit with fewer than two providers.
	ErrTooFewProviders = errors.New("workunit: unit needs at least two providers")

	// ErrNilResolver indicates FindBest without a resolver.
	ErrNilResolver = errors.New("workunit: resolver is nil")
)
