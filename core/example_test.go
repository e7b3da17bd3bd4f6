// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/trustnet/core"
)

// ExampleGraph demonstrates a directed weighted multigraph.
func ExampleGraph() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())

	_, _ = g.AddEdge("A", "B", 0.5)
	_, _ = g.AddEdge("A", "B", 0.7)
	_, _ = g.AddEdge("B", "C", 0.9)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("A→B edges:", len(g.EdgesBetween("A", "B")))
	fmt.Println("B→A exists?", g.HasEdge("B", "A"))
	fmt.Println("in(B), out(A):", g.InDegree("B"), g.OutDegree("A"))

	// Output:
	// Vertices: [A B C]
	// A→B edges: 2
	// B→A exists? false
	// in(B), out(A): 2 2
}

// ExampleUndirectedView shows the symmetric copy used for connectivity checks.
func ExampleUndirectedView() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)

	v := core.UndirectedView(g)
	fmt.Println(g.HasEdge("B", "A"), v.HasEdge("B", "A"))

	// Output:
	// false true
}
