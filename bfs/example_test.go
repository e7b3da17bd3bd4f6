// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/trustnet/bfs"
	"github.com/katalvlaran/trustnet/core"
)

// ExampleBFS shows fewest-hop search with a path rebuild.
func ExampleBFS() {
	g := core.NewGraph()
	// A–B–C–D–K is four hops, A–E–F–K is three.
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"},
		{"A", "E"}, {"E", "F"}, {"F", "K"},
	} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("K")
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleWithMaxDepth collects the neighborhood of a vertex within two hops
// on a directed graph.
func ExampleWithMaxDepth() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("P01", "P02", 0)
	_, _ = g.AddEdge("P01", "P03", 0)
	_, _ = g.AddEdge("P02", "P04", 0)
	_, _ = g.AddEdge("P04", "P05", 0)

	res, _ := bfs.BFS(g, "P01", bfs.WithMaxDepth(2))
	fmt.Println(res.Layers())
	// Output:
	// [[P01] [P02 P03] [P04]]
}
