// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, allocate Vertex,
//     register it and append it to the insertion order.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap adjacency buckets.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.order = append(g.order, id)

	g.muEdgeAdj.Lock()
	ensureBucket(g.out, id)
	ensureBucket(g.in, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the live vertex record for id.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return append(make([]string, 0, len(g.order)), g.order...)
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of incoming and outgoing edge endpoints at id.
//
// Policy:
//   - Directed edge u→v counts as out for u and in for v.
//   - Undirected edge counts as both in and out for each endpoint.
//   - A self-loop counts once as in and once as out.
//
// Complexity: O(deg(id)).
func (g *Graph) Degree(id string) (in, out int, err error) {
	if id == "" {
		return 0, 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return countBucket(g.in[id]), countBucket(g.out[id]), nil
}

// InDegree is Degree without the out count; missing vertices have in-degree 0.
func (g *Graph) InDegree(id string) int {
	in, _, err := g.Degree(id)
	if err != nil {
		return 0
	}

	return in
}

// OutDegree is Degree without the in count; missing vertices have out-degree 0.
func (g *Graph) OutDegree(id string) int {
	_, out, err := g.Degree(id)
	if err != nil {
		return 0
	}

	return out
}

// countBucket sums the edge-ID sets of one adjacency row.
func countBucket(row map[string]map[string]struct{}) int {
	n := 0
	for _, set := range row {
		n += len(set)
	}

	return n
}
