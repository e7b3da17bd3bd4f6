// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for construction-time policy flags plus Stats().
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph, so getters only take muVert.RLock.

package core

// Directed reports whether new edges are directed.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops (from==to) are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// GraphStats is a point-in-time summary of flags and catalog sizes.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	// Isolated counts vertices with no incident edge at all.
	Isolated int
}

// Stats produces a deterministic, read-only snapshot of configuration flags and sizes.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot flags and vertex IDs.
//   - Stage 2: Under muEdgeAdj.RLock, count edges and isolated vertices.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	ids := append([]string(nil), g.order...)
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, id := range ids {
		if len(g.out[id]) == 0 && len(g.in[id]) == 0 {
			stats.Isolated++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
