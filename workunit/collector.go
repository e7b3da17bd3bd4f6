// SPDX-License-Identifier: MIT
package workunit

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/trustnet/bfs"
	"github.com/katalvlaran/trustnet/network"
	"github.com/katalvlaran/trustnet/service"
)

// Collector groups candidate providers per plan service.
type Collector struct {
	plan          []service.Service
	minSimilarity float64
	candidates    [][]*network.Provider // parallel to plan
	seen          map[string]struct{}
}

// NewCollector validates the plan and threshold. Repeated services in plan
// are folded into one.
func NewCollector(plan []service.Service, minSimilarity float64) (*Collector, error) {
	if math.IsNaN(minSimilarity) || minSimilarity <= 0 || minSimilarity > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadSimilarity, minSimilarity)
	}
	distinct := dedupe(plan)
	if len(distinct) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPlanTooSmall, len(distinct))
	}
	for _, s := range distinct[1:] {
		if s.Capacity() != distinct[0].Capacity() {
			return nil, fmt.Errorf("%w: plan service %s", service.ErrCatalogMismatch, s)
		}
	}

	return &Collector{
		plan:          distinct,
		minSimilarity: minSimilarity,
		candidates:    make([][]*network.Provider, len(distinct)),
		seen:          make(map[string]struct{}),
	}, nil
}

// Add offers p as a candidate for every plan service it provides well
// enough. Reputation-only providers and repeated offers are ignored.
func (c *Collector) Add(p *network.Provider) {
	if p == nil || p.ReputationOnly() {
		return
	}
	if _, dup := c.seen[p.Name()]; dup {
		return
	}
	c.seen[p.Name()] = struct{}{}
	for i, s := range c.plan {
		if p.Provide(s) >= c.minSimilarity {
			c.candidates[i] = append(c.candidates[i], p)
		}
	}
}

// Plan returns the deduplicated plan in its original order.
func (c *Collector) Plan() []service.Service {
	return append([]service.Service(nil), c.plan...)
}

// Candidates returns the candidates for s in collection order.
func (c *Collector) Candidates(s service.Service) []*network.Provider {
	for i, ps := range c.plan {
		if ps == s {
			return append([]*network.Provider(nil), c.candidates[i]...)
		}
	}

	return nil
}

// Combinations returns the size of the Cartesian product.
func (c *Collector) Combinations() int {
	n := 1
	for _, list := range c.candidates {
		n *= len(list)
	}

	return n
}

// Enumerate starts a fresh enumeration over the current candidates.
func (c *Collector) Enumerate() *Enumerator {
	return newEnumerator(c.plan, c.candidates)
}

// Collect walks g breadth-first from customer, at most depth hops, and feeds
// every visited provider to a new Collector.
//
// Errors: ErrBadDepth, ErrBadSimilarity, ErrPlanTooSmall,
// service.ErrCatalogMismatch, network.ErrUnknownProvider, ctx errors.
func Collect(ctx context.Context, g *network.Graph, customer string, plan []service.Service, depth int, minSimilarity float64) (*Collector, error) {
	if depth <= 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	c, err := NewCollector(plan, minSimilarity)
	if err != nil {
		return nil, err
	}
	if c.plan[0].Capacity() != len(g.Catalog()) {
		return nil, fmt.Errorf("%w: plan built for %d services, graph for %d",
			service.ErrCatalogMismatch, c.plan[0].Capacity(), len(g.Catalog()))
	}
	if _, ok := g.Provider(customer); !ok {
		return nil, fmt.Errorf("%w: %s", network.ErrUnknownProvider, customer)
	}

	_, err = bfs.BFS(g.Topology(), customer,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(depth),
		bfs.WithOnVisit(func(id string, _ int) error {
			p, _ := g.Provider(id)
			c.Add(p)
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("workunit: collect from %s: %w", customer, err)
	}

	return c, nil
}

// dedupe keeps the first occurrence of each service.
func dedupe(plan []service.Service) []service.Service {
	out := make([]service.Service, 0, len(plan))
	seen := make(map[service.Service]struct{}, len(plan))
	for _, s := range plan {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}
