// SPDX-License-Identifier: MIT
// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     out[from][to][edgeID] and in[to][from][edgeID]
//   - Monotonic Edge.ID generation ("e1", "e2", ...) with Edge.Seq recording
//     insertion order
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert -> muEdgeAdj
//
// Determinism:
//
//   - Vertices() returns IDs in insertion order.
//   - Edges(), Neighbors(), InEdges(), EdgesBetween() return edges by Seq.
//   - NeighborIDs() and Predecessors() follow the order of the first edge
//     reaching each vertex.
//
// Views:
//
//   - UndirectedView(g) copies every edge as an undirected edge, keeping
//     weights and IDs. Spanning-forest checks run on it.
//   - InducedSubgraph(g, keep) restricts g to a vertex subset.
//
// Errors are sentinels (ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound,
// ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed) checked with errors.Is.
package core
