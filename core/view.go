// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (copying topology with altered properties).
// Determinism:
//   - Vertex insertion order and edge Seq order are preserved.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// UndirectedView returns a weighted, undirected multigraph with the same
// vertices as g and one undirected edge per edge of g. Weights and IDs are
// carried over. Self-loops are kept. The input graph is not mutated.
//
// Complexity: O(V + E log E).
func UndirectedView(g *Graph) *Graph {
	out := NewGraph(WithDirected(false), WithWeighted(), WithMultiEdges(), WithLoops())
	copyVertices(g, out)

	for _, e := range g.Edges() {
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Seq: e.Seq}
		out.edges[ne.ID] = ne
		link(out, ne)
	}
	out.nextEdgeID = g.edgeCounter()

	return out
}

// InducedSubgraph returns a new Graph keeping only the vertices in keep and
// the edges whose endpoints are both kept. Flags, IDs and order are preserved.
//
// Complexity: O(V + E log E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	g.muVert.RUnlock()

	out := NewGraph(opts...)
	for _, id := range g.Vertices() {
		if keep[id] {
			_ = out.AddVertex(id)
		}
	}
	for _, e := range g.Edges() {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := *e
		out.edges[ne.ID] = &ne
		link(out, &ne)
	}
	out.nextEdgeID = g.edgeCounter()

	return out
}

// copyVertices appends all vertices of src to dst in insertion order.
func copyVertices(src, dst *Graph) {
	src.muVert.RLock()
	defer src.muVert.RUnlock()
	for _, id := range src.order {
		dst.vertices[id] = &Vertex{ID: id, Metadata: src.vertices[id].Metadata}
		dst.order = append(dst.order, id)
		ensureBucket(dst.out, id)
		ensureBucket(dst.in, id)
	}
}

func (g *Graph) edgeCounter() uint64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.nextEdgeID
}
