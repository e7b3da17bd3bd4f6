// SPDX-License-Identifier: MIT
// Package trust resolves transitive trust over a network.Graph.
//
// A Resolver is built once per graph and per list of queryable services.
// For a query service s every trust edge e costs
//
//	w_s(e) = 1 / (similarity(s, e.service) * (2 + e.level))
//
// so edges about related services and with high trust are cheap. Edges whose
// service has zero similarity to s are absent for that query.
//
// Reputation(from, to, s) follows the cheapest path from→to and returns the
// minimum of similarity(s, e.service) * e.level over its edges: a chain of
// trust is as strong as its weakest hop. With no path (or from == to) the
// result is 0, which callers cannot tell apart from a path whose weakest hop
// is exactly zero; use Path to distinguish the two.
//
// Shortest-path trees are computed lazily per (service, observer) and
// cached. A Resolver is safe for concurrent use once its graph is complete;
// the graph must not change afterwards.
package trust
