// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by Edge.Seq asc (insertion order).
//   - Edge IDs are monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID.
//
// Steps:
//  1. Validate IDs, weight and loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Assign ID and Seq, store the edge, link out/in adjacency.
//  5. Undirected edges are linked in both orientations.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.out[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	e := &Edge{
		ID:       nextEdgeID(g.nextEdgeID),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		Seq:      g.nextEdgeID,
	}
	g.edges[e.ID] = e
	link(g, e)

	return e.ID, nil
}

// RemoveEdge deletes one edge and its adjacency entries.
// Removing an absent edge returns ErrEdgeNotFound.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	unlink(g, e)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are visible in both orientations.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.out[from][to]) > 0
}

// GetEdge returns the Edge with the given ID or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgesBetween returns every edge from→to in insertion order.
// An unknown endpoint yields an empty slice.
func (g *Graph) EdgesBetween(from, to string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return collect(g, g.out[from][to])
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID renders a sequence number as "e<seq>" without fmt.
func nextEdgeID(seq uint64) string {
	var buf [21]byte
	b := append(buf[:0], edgeIDPrefix)
	b = strconv.AppendUint(b, seq, 10)

	return string(b)
}

// sortBySeq orders edges by insertion sequence.
func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].Seq < es[j].Seq })
}

// collect maps an edge-ID set to *Edge sorted by Seq. Caller holds muEdgeAdj.
func collect(g *Graph, set map[string]struct{}) []*Edge {
	out := make([]*Edge, 0, len(set))
	for eid := range set {
		if e, ok := g.edges[eid]; ok {
			out = append(out, e)
		}
	}
	sortBySeq(out)

	return out
}

// ensureBucket allocates the row of adj for id if missing.
func ensureBucket(adj map[string]map[string]map[string]struct{}, id string) {
	if adj[id] == nil {
		adj[id] = make(map[string]map[string]struct{})
	}
}

// put records eid under adj[a][b].
func put(adj map[string]map[string]map[string]struct{}, a, b, eid string) {
	ensureBucket(adj, a)
	if adj[a][b] == nil {
		adj[a][b] = make(map[string]struct{})
	}
	adj[a][b][eid] = struct{}{}
}

// drop removes eid from adj[a][b] and prunes the empty set.
func drop(adj map[string]map[string]map[string]struct{}, a, b, eid string) {
	set := adj[a][b]
	if set == nil {
		return
	}
	delete(set, eid)
	if len(set) == 0 {
		delete(adj[a], b)
	}
}

// link inserts e into out/in adjacency. Caller holds muEdgeAdj.
func link(g *Graph, e *Edge) {
	put(g.out, e.From, e.To, e.ID)
	put(g.in, e.To, e.From, e.ID)
	if !e.Directed && e.From != e.To {
		put(g.out, e.To, e.From, e.ID)
		put(g.in, e.From, e.To, e.ID)
	}
}

// unlink is the inverse of link. Caller holds muEdgeAdj.
func unlink(g *Graph, e *Edge) {
	drop(g.out, e.From, e.To, e.ID)
	drop(g.in, e.To, e.From, e.ID)
	if !e.Directed && e.From != e.To {
		drop(g.out, e.To, e.From, e.ID)
		drop(g.in, e.From, e.To, e.ID)
	}
}
