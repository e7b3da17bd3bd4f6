// SPDX-License-Identifier: MIT
// Package dijkstra provides single-source shortest paths on graphs with
// non-negative edge costs.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source vertex to every
//     reachable vertex in O((V + E) log V) time.
//   - Costs come from Edge.Weight, or from a WeightFunc supplied per run. A
//     WeightFunc may also hide an edge for that run, which lets one topology
//     serve many cost models (for example, one per service in a trust network).
//   - The Result carries distances, predecessor vertices and predecessor
//     edges, so any path is rebuilt in O(path length) with Result.PathTo.
//
// Key features:
//
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with cost ≥ threshold as impassable.
//   - Mixed edges: directed and undirected edges may share one graph.
//   - Deterministic: equal-cost paths resolve the same way on every run.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound: bad inputs.
//   - ErrUnweightedGraph: unweighted graph and no WeightFunc.
//   - ErrNegativeWeight: a stored or computed cost is negative or NaN.
//   - ErrUnreachable: Result.PathTo on a vertex with infinite distance.
//   - ErrBadMaxDistance, ErrBadInfThreshold: panics from option constructors.
//
// Thread safety:
//
//   - Dijkstra only reads g. Concurrent runs over the same graph are safe as
//     long as nobody mutates it meanwhile. A Result is immutable after return.
package dijkstra
