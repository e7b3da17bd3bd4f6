// SPDX-License-Identifier: MIT
// Package: trustnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "PowerLaw: connections=0: builder: ...".
//   • Algorithms never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (provider counts,
// iterations) is smaller than the allowed minimum. The generator needs at
// least two providers to draw distinct endpoint pairs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNoConnections indicates a request for zero skeleton edges. Rewiring
// samples vertices until one has an in-edge, which never terminates on an
// edgeless skeleton, so the request is rejected up front.
var ErrNoConnections = errors.New("builder: at least one connection is required")

// ErrSubsetTooLarge indicates more services per provider were requested than
// the catalog holds.
var ErrSubsetTooLarge = errors.New("builder: service subset larger than catalog")

// ErrEmptyCatalog indicates a generator call without any service.
var ErrEmptyCatalog = errors.New("builder: service catalog is empty")

// ErrNeedRandSource indicates that the resolved config carries no random
// state (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a core or network mutation failed while
// building; the wrapped error carries the cause.
var ErrConstructFailed = errors.New("builder: construction failed")
