// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, InEdges, NeighborIDs, Predecessors).
// Determinism:
//   - Edge slices are sorted by Edge.Seq asc.
//   - ID slices follow the order of the first edge reaching each neighbor.
// Concurrency:
//   - Locks are taken in the order muVert -> muEdgeAdj.

package core

// Neighbors returns the edges leaving id.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == id.
//   - Undirected edges: every incident edge; self-loops appear once.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyVertexID).
//   - Stage 2: Take muVert then muEdgeAdj read locks and check existence (ErrVertexNotFound).
//   - Stage 3: Gather edge IDs from out[id] and resolve them in Seq order.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	return g.adjacent(id, true)
}

// InEdges returns the edges arriving at id, mirroring Neighbors.
func (g *Graph) InEdges(id string) ([]*Edge, error) {
	return g.adjacent(id, false)
}

// NeighborIDs returns unique successor IDs of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	return endpoints(edges, id), nil
}

// Predecessors returns unique IDs of vertices with an edge into id.
func (g *Graph) Predecessors(id string) ([]string, error) {
	edges, err := g.InEdges(id)
	if err != nil {
		return nil, err
	}

	return endpoints(edges, id), nil
}

func (g *Graph) adjacent(id string, outgoing bool) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	row := g.in[id]
	if outgoing {
		row = g.out[id]
	}
	merged := make(map[string]struct{})
	for _, set := range row {
		for eid := range set {
			merged[eid] = struct{}{}
		}
	}

	return collect(g, merged), nil
}

// endpoints returns the far end of each edge relative to id, deduplicated.
func endpoints(edges []*Edge, id string) []string {
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	var other string
	for _, e := range edges {
		other = e.To
		if other == id {
			other = e.From
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}

	return out
}
