// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Result: Order (visit sequence), Depth (hops from start), Parent (BFS tree).
//   - Hooks: OnEnqueue on discovery, OnVisit on dequeue (may abort with an error).
//   - WithMaxDepth(d) keeps only vertices at most d hops away; each vertex is
//     visited at most once, so cycles never re-expand.
//   - Directed edges are followed From→To only; undirected edges both ways.
//     Edge weights are ignored.
//
// Determinism
//
//	Successors are expanded in edge insertion order (core.Graph.NeighborIDs),
//	so the visit sequence is reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log E)  (neighbor lists are sorted by edge sequence)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors.
//   - context errors from WithContext, wrapped OnVisit errors.
package bfs
