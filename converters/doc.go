// SPDX-License-Identifier: MIT
// Package converters serializes a network.Graph for external tools and
// parses the line formats back.
//
// Node stream, one line per provider in insertion order:
//
//	P01,S03_1,S07_1
//
// Edge stream, one line per ordered provider pair with at least one trust
// edge; parallel edges are aggregated in insertion order and endpoints use
// full names (R = reputation-only, S = service provider):
//
//	P01S,P04R,S03=0.8124,S07=-0.25
//
// Levels are written with the shortest exact decimal form, so ReadGraph
// rebuilds the same vertices and the same multiset of
// (source, destination, service, level) edges.
//
// WriteDOT emits a Graphviz digraph with one labelled statement per trust
// edge and a bare statement for every isolated provider.
package converters
