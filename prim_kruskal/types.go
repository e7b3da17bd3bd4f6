// SPDX-License-Identifier: MIT
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/trustnet/core"
)

// ErrInvalidGraph is returned when the input graph is nil or directed.
// Spanning structures are defined on undirected graphs; use core.UndirectedView.
var ErrInvalidGraph = errors.New("prim_kruskal: spanning forest requires an undirected graph")

// ErrDisconnected is returned by Kruskal when no single spanning tree exists.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// Forest is a minimum spanning forest: one minimum spanning tree per
// connected component.
type Forest struct {
	// Edges of the forest, in the order Kruskal accepted them.
	Edges []core.Edge

	// TotalWeight is the sum of Edges' weights.
	TotalWeight float64

	// Trees is the number of trees, i.e. the number of connected components.
	// An isolated vertex is a tree on its own; an empty graph has zero trees.
	Trees int
}

// Connected reports whether the forest consists of exactly one tree.
func (f Forest) Connected() bool { return f.Trees == 1 }
