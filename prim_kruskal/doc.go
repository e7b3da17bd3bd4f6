// SPDX-License-Identifier: MIT
// Package prim_kruskal computes minimum spanning forests on undirected
// *core.Graph values with Kruskal's algorithm.
//
// What & Why
//
//   - A spanning forest holds one spanning tree per connected component, so
//     its tree count is the number of components. A trust graph is accepted
//     for simulation only when its undirected shadow (core.UndirectedView)
//     yields exactly one tree.
//
// Algorithms Provided
//
//   - SpanningForest(g) (Forest, error)
//
//   - Strategy: stable-sort non-loop edges by weight, merge components with a
//     disjoint-set, record accepted edges. Trees = |V| - |accepted|.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: Edges() is in insertion order and the sort is stable, so
//     ties break predictably.
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//
//   - Same pass; fails with ErrDisconnected unless the forest is a single tree.
//
// Errors:
//
//   - ErrInvalidGraph: nil or directed input.
//   - ErrDisconnected: Kruskal on a graph with zero or several components.
package prim_kruskal
