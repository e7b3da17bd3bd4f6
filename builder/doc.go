// SPDX-License-Identifier: MIT
// Package builder generates synthetic trust graphs with functional options.
//
// The package offers the following key components:
//
//   - PowerLaw(serviceProviders, reputationProviders, connections, iterations, catalog, opts...)
//     builds an Eppstein–Wang power-law directed multigraph of providers,
//     labels every edge with a service and a trust level, and marks the
//     providers with the most outgoing trust as reputation-only.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds random state, naming scheme and rewiring policy.
//   - Options:
//     – WithSeed / WithRand:       random state (required).
//     – WithIDScheme / WithNamePattern: provider names (default "P%02d").
//     – WithLiveDegree:            recompute the in-degree picker every step
//     instead of snapshotting it once after the skeleton phase.
//     – WithServicesPerProvider:   fixed subset size instead of a drawn one.
//   - Naming schemes (IDFn): DefaultIDFn, ProviderIDFn, PatternIDFn.
//
// Degree snapshot:
//
//	By default the rewiring target y is drawn proportionally to the in-degree
//	observed right after Phase 1, not the live in-degree. This is cheaper
//	(O(log V) per draw) and changes the rewiring statistics slightly; pass
//	WithLiveDegree for the model's live variant (O(V) per draw).
//
// Errors are sentinels (ErrTooFewVertices, ErrNoConnections, ErrSubsetTooLarge,
// ErrEmptyCatalog, ErrNeedRandSource, ErrConstructFailed) wrapped with the
// method name; branch on them with errors.Is.
package builder
