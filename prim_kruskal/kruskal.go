// SPDX-License-Identifier: MIT
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/trustnet/core"
)

// SpanningForest computes a minimum spanning forest of an undirected graph
// using Kruskal's algorithm.
//
// Implementation:
//   - Stage 1: Validate the graph is non-nil and undirected.
//   - Stage 2: Collect non-loop edges in Seq order and stable-sort them by weight.
//   - Stage 3: Run union-find (path halving, union by rank) over the vertices.
//   - Stage 4: Trees = |V| - |accepted edges|.
//
// Determinism:
//   - Ties on weight are broken by edge insertion order.
//
// Complexity:
//   - Time O(E log E + α(V)·E), Space O(V + E).
func SpanningForest(graph *core.Graph) (Forest, error) {
	if graph == nil || graph.Directed() {
		return Forest{}, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	all := graph.Edges()
	edges := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To || e.Directed {
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}

	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	union := func(u, v string) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}

		return true
	}

	var forest Forest
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		forest.Edges = append(forest.Edges, *e)
		forest.TotalWeight += e.Weight
		if len(forest.Edges) == len(vertices)-1 {
			break
		}
	}
	forest.Trees = len(vertices) - len(forest.Edges)

	return forest, nil
}

// Kruskal returns the minimum spanning tree of a connected undirected graph.
// A single vertex yields an empty tree; an empty or disconnected graph
// yields ErrDisconnected.
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	forest, err := SpanningForest(graph)
	if err != nil {
		return nil, 0, err
	}
	if !forest.Connected() {
		return nil, 0, fmt.Errorf("%w: %d components", ErrDisconnected, forest.Trees)
	}
	if forest.Edges == nil {
		forest.Edges = []core.Edge{}
	}

	return forest.Edges, forest.TotalWeight, nil
}
