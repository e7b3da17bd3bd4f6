// SPDX-License-Identifier: MIT
package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/trustnet/core"
	"github.com/katalvlaran/trustnet/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle constructs a simple undirected, weighted triangle graph:
//
//	A-B (weight 1), B-C (weight 2), A-C (weight 3).
//
// This graph's MST consists of edges A-B and B-C with total weight 3.
func buildTriangle() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	return g
}

// buildMediumGraph creates a connected, weighted graph with n vertices:
// a chain V0-V1-...-V(n-1) plus extra random edges, seeded for reproducibility.
func buildMediumGraph(n, edgesCount int) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("V%d", i))
	}
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		weight := 1.0 + r.Float64() + float64(r.Intn(10))
		_, _ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), weight)
	}
	for i := 0; i < edgesCount-(n-1); {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		weight := 1.0 + r.Float64() + float64(r.Intn(100))
		if _, err := g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), weight); err == nil {
			i++
		}
	}

	return g
}

func TestValidation_Empty(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	forest, err := prim_kruskal.SpanningForest(g)
	require.NoError(t, err)
	assert.Zero(t, forest.Trees)
	assert.False(t, forest.Connected())

	edges, total, err := prim_kruskal.Kruskal(g)
	assert.Empty(t, edges)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestValidation_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	_, err := prim_kruskal.SpanningForest(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.SpanningForest(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestKruskal_Triangle(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal(buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	require.Len(t, mst, 2)

	names := make(map[string]bool, 2)
	for _, e := range mst {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		names[u+"-"+v] = true
	}
	assert.True(t, names["A-B"], "edge A-B must be in MST")
	assert.True(t, names["B-C"], "edge B-C must be in MST")
}

func TestSingleVertexGraph(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("X")

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)
}

func TestSpanningForest_CountsComponents(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("E", "E", 1) // a loop does not connect anything
	_ = g.AddVertex("F")

	forest, err := prim_kruskal.SpanningForest(g)
	require.NoError(t, err)
	assert.Equal(t, 4, forest.Trees)
	assert.Len(t, forest.Edges, 2)

	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestSpanningForest_UndirectedViewOfDirected(t *testing.T) {
	// A→B and C→B are weakly connected although B reaches nobody.
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "B", 0)

	forest, err := prim_kruskal.SpanningForest(core.UndirectedView(g))
	require.NoError(t, err)
	assert.True(t, forest.Connected())
}

func TestParallelEdgesSelection(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, total)
	assert.Len(t, mst, 1)
}

func TestKruskal_MediumGraph(t *testing.T) {
	g := buildMediumGraph(10, 20)

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, mst, len(g.Vertices())-1)

	// Total weight cannot exceed the chain that guarantees connectivity.
	chain := 0.0
	for _, e := range g.Edges()[:9] {
		chain += e.Weight
	}
	assert.LessOrEqual(t, total, chain)
}
