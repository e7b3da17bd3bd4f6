// SPDX-License-Identifier: MIT
package trust

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/trustnet/core"
	"github.com/katalvlaran/trustnet/dijkstra"
	"github.com/katalvlaran/trustnet/network"
	"github.com/katalvlaran/trustnet/service"
)

var (
	// ErrNilGraph indicates a Resolver over a nil graph.
	ErrNilGraph = errors.New("trust: graph is nil")

	// ErrUnknownService indicates a query for a service the Resolver was not built for.
	ErrUnknownService = errors.New("trust: service not registered with resolver")
)

// treeKey identifies one cached shortest-path tree.
type treeKey struct {
	service int
	source  string
}

// Resolver computes transitive trust on a finished graph.
type Resolver struct {
	graph    *network.Graph
	services []service.Service
	weights  map[int]dijkstra.WeightFunc

	mu    sync.Mutex
	trees map[treeKey]*dijkstra.Result
}

// NewResolver prepares one edge-cost function per service. Every service
// must belong to the graph's catalog; duplicates are ignored.
func NewResolver(g *network.Graph, services []service.Service) (*Resolver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	r := &Resolver{
		graph:   g,
		weights: make(map[int]dijkstra.WeightFunc, len(services)),
		trees:   make(map[treeKey]*dijkstra.Result),
	}
	for _, s := range services {
		if s.Capacity() != len(g.Catalog()) {
			return nil, fmt.Errorf("%w: service %s", service.ErrCatalogMismatch, s)
		}
		if _, dup := r.weights[s.ID()]; dup {
			continue
		}
		r.services = append(r.services, s)
		r.weights[s.ID()] = r.weightFor(s)
	}

	return r, nil
}

// Services returns the registered services in registration order.
func (r *Resolver) Services() []service.Service {
	return append([]service.Service(nil), r.services...)
}

// Graph returns the graph the Resolver works on.
func (r *Resolver) Graph() *network.Graph { return r.graph }

// weightFor builds the cost function of one query service.
func (r *Resolver) weightFor(s service.Service) dijkstra.WeightFunc {
	return func(e *core.Edge) (float64, bool) {
		t, ok := r.graph.Trust(e.ID)
		if !ok {
			return 0, false
		}
		sim := service.Similarity(s, t.Service)
		if sim == 0 {
			return 0, false
		}

		return 1 / (sim * (2 + t.Level)), true
	}
}

// Reputation returns how much from trusts to for s, in [-1,1].
//
// Errors: network.ErrUnknownProvider for unknown endpoints, ErrUnknownService
// for services not passed to NewResolver.
func (r *Resolver) Reputation(from, to string, s service.Service) (float64, error) {
	path, err := r.Path(from, to, s)
	if err != nil {
		return 0, err
	}
	if len(path) == 0 {
		return 0, nil
	}

	rep := 1.0
	for _, e := range path {
		if v := service.Similarity(s, e.Trust.Service) * e.Trust.Level; v < rep {
			rep = v
		}
	}

	return rep, nil
}

// Path returns the cheapest trust path from→to for s. It is empty when no
// path exists or from == to.
func (r *Resolver) Path(from, to string, s service.Service) ([]network.Edge, error) {
	if _, ok := r.weights[s.ID()]; !ok || s.Capacity() != len(r.graph.Catalog()) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownService, s)
	}
	for _, name := range [2]string{from, to} {
		if _, ok := r.graph.Provider(name); !ok {
			return nil, fmt.Errorf("%w: %s", network.ErrUnknownProvider, name)
		}
	}
	if from == to {
		return nil, nil
	}

	tree, err := r.tree(s, from)
	if err != nil {
		return nil, err
	}
	edges, err := tree.PathTo(to)
	if errors.Is(err, dijkstra.ErrUnreachable) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]network.Edge, len(edges))
	for i, e := range edges {
		out[i] = r.graph.Label(e)
	}

	return out, nil
}

// tree returns the cached shortest-path tree rooted at source for s.
func (r *Resolver) tree(s service.Service, source string) (*dijkstra.Result, error) {
	key := treeKey{service: s.ID(), source: source}

	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.trees[key]; ok {
		return t, nil
	}
	t, err := dijkstra.Dijkstra(r.graph.Topology(),
		dijkstra.Source(source),
		dijkstra.WithWeightFunc(r.weights[s.ID()]),
	)
	if err != nil {
		return nil, fmt.Errorf("trust: shortest paths from %s for %s: %w", source, s, err)
	}
	r.trees[key] = t

	return t, nil
}
