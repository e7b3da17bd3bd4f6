// SPDX-License-Identifier: MIT
// Package service implements the similarity tree over a service catalog.
//
// A catalog of n services assigns ids 1..n inside an implicit binary tree
// (the parent of id k is k/2). Every Service remembers the capacity n of the
// catalog it came from; only services from the same capacity are comparable.
//
//	height(n)     = ceil(log2 n)
//	Distance(a,b) = hops needed to make a.id == b.id by halving the larger id
//	Similarity    = max(0, 1 - Distance/height)
//
// Similarity is symmetric, Similarity(s,s) == 1 and the range is [0,1].
// Comparing services of different catalogs is an invariant violation:
// Similarity panics with ErrCatalogMismatch, Compare returns it.
package service
