// SPDX-License-Identifier: MIT
package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trustnet/core"
	"github.com/katalvlaran/trustnet/prim_kruskal"
	"github.com/katalvlaran/trustnet/service"
)

var (
	// ErrDuplicateProvider indicates a second provider with an existing name.
	ErrDuplicateProvider = errors.New("network: duplicate provider")

	// ErrUnknownProvider indicates a name that is not a vertex of the graph.
	ErrUnknownProvider = errors.New("network: unknown provider")
)

// Graph is the trust graph: a directed multigraph of providers whose edges
// carry Trust labels. Vertex insertion order is preserved.
type Graph struct {
	topo      *core.Graph
	catalog   service.Catalog
	providers map[string]*Provider
	trust     map[string]Trust // core edge ID → label
}

// NewGraph returns an empty trust graph over catalog.
func NewGraph(catalog service.Catalog) *Graph {
	return &Graph{
		topo:      core.NewGraph(core.WithDirected(true), core.WithMultiEdges()),
		catalog:   catalog,
		providers: make(map[string]*Provider),
		trust:     make(map[string]Trust),
	}
}

// Catalog returns the service catalog every provider and label belongs to.
func (g *Graph) Catalog() service.Catalog { return g.catalog }

// Topology exposes the underlying directed multigraph for traversal
// algorithms. Callers must not mutate it.
func (g *Graph) Topology() *core.Graph { return g.topo }

// AddProvider registers p as a new vertex. Its services must come from the
// graph's catalog.
func (g *Graph) AddProvider(p *Provider) error {
	if _, dup := g.providers[p.Name()]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateProvider, p.Name())
	}
	for _, s := range p.services {
		if s.Capacity() != len(g.catalog) {
			return fmt.Errorf("%w: provider %s service %s", service.ErrCatalogMismatch, p.Name(), s)
		}
	}
	if err := g.topo.AddVertex(p.Name()); err != nil {
		return err
	}
	g.providers[p.Name()] = p

	return nil
}

// Connect adds the trust edge from→to and returns its edge ID.
func (g *Graph) Connect(from, to string, t Trust) (string, error) {
	if _, ok := g.providers[from]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownProvider, from)
	}
	if _, ok := g.providers[to]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownProvider, to)
	}
	if t.Service.Capacity() != len(g.catalog) {
		return "", fmt.Errorf("%w: trust label %s", service.ErrCatalogMismatch, t.Service)
	}
	if _, err := NewTrust(t.Service, t.Level); err != nil {
		return "", err
	}
	eid, err := g.topo.AddEdge(from, to, 0)
	if err != nil {
		return "", err
	}
	g.trust[eid] = t

	return eid, nil
}

// Provider looks a provider up by name.
func (g *Graph) Provider(name string) (*Provider, bool) {
	p, ok := g.providers[name]

	return p, ok
}

// Providers returns all providers in insertion order.
func (g *Graph) Providers() []*Provider {
	names := g.topo.Vertices()
	out := make([]*Provider, len(names))
	for i, n := range names {
		out[i] = g.providers[n]
	}

	return out
}

// ProviderCount returns the number of vertices.
func (g *Graph) ProviderCount() int { return g.topo.VertexCount() }

// EdgeCount returns the number of trust edges.
func (g *Graph) EdgeCount() int { return g.topo.EdgeCount() }

// Trust returns the label of a core edge.
func (g *Graph) Trust(edgeID string) (Trust, bool) {
	t, ok := g.trust[edgeID]

	return t, ok
}

// Label converts a core edge of this graph into a trust Edge.
func (g *Graph) Label(e *core.Edge) Edge {
	return Edge{ID: e.ID, From: e.From, To: e.To, Trust: g.trust[e.ID]}
}

// Edges returns every trust edge in insertion order.
func (g *Graph) Edges() []Edge {
	return g.labelAll(g.topo.Edges())
}

// EdgesBetween returns the parallel trust edges from→to in insertion order.
func (g *Graph) EdgesBetween(from, to string) []Edge {
	return g.labelAll(g.topo.EdgesBetween(from, to))
}

// OutEdges returns the trust edges leaving name.
func (g *Graph) OutEdges(name string) ([]Edge, error) {
	es, err := g.topo.Neighbors(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}

	return g.labelAll(es), nil
}

// InEdges returns the trust edges arriving at name.
func (g *Graph) InEdges(name string) ([]Edge, error) {
	es, err := g.topo.InEdges(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}

	return g.labelAll(es), nil
}

// Successors returns the distinct providers name trusts, in edge order.
func (g *Graph) Successors(name string) ([]string, error) {
	ids, err := g.topo.NeighborIDs(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}

	return ids, nil
}

// OutDegree returns the number of trust edges leaving name.
func (g *Graph) OutDegree(name string) int { return g.topo.OutDegree(name) }

// InDegree returns the number of trust edges arriving at name.
func (g *Graph) InDegree(name string) int { return g.topo.InDegree(name) }

func (g *Graph) labelAll(es []*core.Edge) []Edge {
	out := make([]Edge, len(es))
	for i, e := range es {
		out[i] = g.Label(e)
	}

	return out
}

// IsWellFormed reports whether the undirected shadow of g is a single
// connected component, i.e. its minimum spanning forest has exactly one tree.
// An empty graph is not well formed. The result depends only on structure.
func IsWellFormed(g *Graph) bool {
	return SpanningTrees(g) == 1
}

// SpanningTrees returns the number of trees of the spanning forest of g's
// undirected shadow (0 for an empty graph).
func SpanningTrees(g *Graph) int {
	forest, err := prim_kruskal.SpanningForest(core.UndirectedView(g.topo))
	if err != nil {
		return 0
	}

	return forest.Trees
}
