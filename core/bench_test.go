// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/trustnet/core"
)

// BenchmarkAddEdge_MultiEdges measures performance of adding parallel
// weighted edges to a directed multigraph.
func BenchmarkAddEdge_MultiEdges(b *testing.B) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", "Leaf", float64(i))
	}
}

// BenchmarkNeighbors measures out-edge retrieval on a hub vertex.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("Hub", fmt.Sprintf("N%d", i), 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("Hub")
	}
}

// BenchmarkUndirectedView measures view construction on a chain.
func BenchmarkUndirectedView(b *testing.B) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.UndirectedView(g)
	}
}
