// SPDX-License-Identifier: MIT
package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/trustnet/core"
	"github.com/katalvlaran/trustnet/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle graph.
// The MST is {A–B, B–C} with total weight 3.
func ExampleKruskal() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 4)

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B B-C
}

// ExampleSpanningForest counts the connected components of a directed
// graph through its undirected view.
func ExampleSpanningForest() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("P00", "P01", 0)
	_, _ = g.AddEdge("P02", "P03", 0)

	forest, _ := prim_kruskal.SpanningForest(core.UndirectedView(g))
	fmt.Println("trees:", forest.Trees)
	// Output: trees: 2
}
