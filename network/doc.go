// SPDX-License-Identifier: MIT
// Package network is the trust-network data model: providers, service-labeled
// trust edges, the trust graph, and working units.
//
// The trust Graph keeps ownership of everything in one place: a directed
// multigraph from package core holds the topology (vertex = provider name,
// edge = trust relation) while side tables map names to *Provider and edge
// IDs to Trust labels. Traversals work on names and edge IDs, never on
// object references between providers.
//
// Lifecycle:
//   - Providers are created with a fixed service set; the reputation-only
//     flag is assigned once after generation.
//   - Trust edges are immutable once connected.
//   - A Graph is built once and then only read.
package network
