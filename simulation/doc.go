// SPDX-License-Identifier: MIT
// Package simulation orchestrates a trust-network experiment: it generates
// power-law trust graphs until one is well formed (bounded by a retry
// budget), then answers reputation and working-unit queries on it.
//
// Each generation attempt owns its own random stream derived from the run
// seed and its own graph, so attempts may run in parallel without sharing
// state. The accepted graph is always the lowest-numbered well-formed
// attempt, which keeps a run reproducible from its seed regardless of the
// degree of parallelism.
//
// A Runner logs through zap and counts attempts, rejections, enumerated
// units and the best score on a private Prometheus registry.
package simulation
