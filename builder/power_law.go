// SPDX-License-Identifier: MIT
// Package: trustnet/builder
//
// power_law.go - implementation of the PowerLaw trust-graph generator.
//
// Canonical model (Eppstein & Wang, "A Steady State Model for Graph Power Laws", 2002):
//   - Phase 1: V = serviceProviders + reputationProviders providers, each with a
//     random non-empty service subset; add unlabeled directed edges between
//     uniformly random distinct pairs until exactly `connections` edges exist.
//     Duplicates are not avoided; the initial distribution does not matter.
//   - Phase 2: repeat `iterations` times:
//     1. pick v uniformly, resampling until v has an in-edge;
//     2. pick an in-edge (u,v) of v uniformly;
//     3. pick x uniformly;
//     4. pick y proportionally to in-degree;
//     5. if x != y, move the edge: remove (u,v), add (x,y). Parallel edges are fine.
//   - Phase 3: label every in-edge (from,to) with a uniform service of `to` and a
//     trust level; rank providers by descending out-degree (stable) and mark the
//     first reputationProviders of the ranking as reputation-only.
//
// Contract:
//   - serviceProviders, reputationProviders, iterations ≥ 0 (else ErrTooFewVertices).
//   - serviceProviders + reputationProviders ≥ 2 (else ErrTooFewVertices).
//   - connections ≥ 1 (else ErrNoConnections).
//   - catalog non-empty (else ErrEmptyCatalog).
//   - cfg.rng non-nil (else ErrNeedRandSource).
//
// Determinism:
//   - Providers are created in index order; all draws come from cfg.rng in a
//     fixed order, so a fixed seed reproduces the graph exactly.
//
// Complexity:
//   - Time: O(C) skeleton + O(I·(V/deg-hit + log V)) rewiring (O(I·V) with
//     WithLiveDegree) + O(E log E) labeling. Space: O(V + E).

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/trustnet/core"
	"github.com/katalvlaran/trustnet/network"
	"github.com/katalvlaran/trustnet/sampling"
	"github.com/katalvlaran/trustnet/service"
)

// PowerLaw generates a labeled power-law trust graph over catalog.
func PowerLaw(serviceProviders, reputationProviders, connections, iterations int,
	catalog service.Catalog, opts ...BuilderOption) (*network.Graph, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if serviceProviders < 0 || reputationProviders < 0 {
		return nil, fmt.Errorf("%s: providers=%d/%d negative: %w",
			MethodPowerLaw, serviceProviders, reputationProviders, ErrTooFewVertices)
	}
	total := serviceProviders + reputationProviders
	if total < minProviders {
		return nil, fmt.Errorf("%s: providers=%d < min=%d: %w",
			MethodPowerLaw, total, minProviders, ErrTooFewVertices)
	}
	if connections < minConnections {
		return nil, fmt.Errorf("%s: connections=%d: %w", MethodPowerLaw, connections, ErrNoConnections)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%s: iterations=%d < 0: %w", MethodPowerLaw, iterations, ErrTooFewVertices)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("%s: %w", MethodPowerLaw, ErrEmptyCatalog)
	}
	if cfg.servicesPerProvider > len(catalog) {
		return nil, fmt.Errorf("%s: requested %d services of %d: %w",
			MethodPowerLaw, cfg.servicesPerProvider, len(catalog), ErrSubsetTooLarge)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodPowerLaw, ErrNeedRandSource)
	}

	// 2) Phase 1: providers and the unlabeled skeleton.
	providers, err := makeProviders(total, catalog, cfg)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	skel, err := skeleton(names, connections, cfg.rng)
	if err != nil {
		return nil, err
	}

	// 3) Phase 2: power-law rewiring.
	if err = rewire(skel, names, iterations, cfg); err != nil {
		return nil, err
	}

	// 4) Phase 3: labeling and reputation-only classification.
	return label(skel, providers, catalog, reputationProviders, cfg.rng)
}

// makeProviders creates n providers named by cfg.idFn with random service subsets.
func makeProviders(n int, catalog service.Catalog, cfg builderConfig) ([]*network.Provider, error) {
	out := make([]*network.Provider, n)
	for i := 0; i < n; i++ {
		k := cfg.servicesPerProvider
		if k == 0 {
			var err error
			if k, err = cfg.rng.ServiceCount(len(catalog)); err != nil {
				return nil, fmt.Errorf("%s: service count: %w", MethodPowerLaw, err)
			}
		}
		subset, err := sampling.Subset(cfg.rng, []service.Service(catalog), k)
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", MethodPowerLaw, err, ErrSubsetTooLarge)
		}
		if out[i], err = network.NewProvider(cfg.idFn(i), subset); err != nil {
			return nil, fmt.Errorf("%s: provider %d: %v: %w", MethodPowerLaw, i, err, ErrConstructFailed)
		}
	}

	return out, nil
}

// skeleton adds random distinct-endpoint edges until exactly m edges exist.
func skeleton(names []string, m int, rng *sampling.Rand) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for _, n := range names {
		if err := g.AddVertex(n); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %v: %w", MethodPowerLaw, n, err, ErrConstructFailed)
		}
	}
	for g.EdgeCount() < m {
		u, v, err := sampling.Pair(rng, names)
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", MethodPowerLaw, err, ErrTooFewVertices)
		}
		if _, err = g.AddEdge(u, v, 0); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%s→%s): %v: %w", MethodPowerLaw, u, v, err, ErrConstructFailed)
		}
	}

	return g, nil
}

// inDegreePicker snapshots the current in-degrees of g.
func inDegreePicker(g *core.Graph, names []string, rng *sampling.Rand) (*sampling.Picker[string], error) {
	p, err := sampling.NewPicker(rng, names, g.InDegree)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", MethodPowerLaw, err, ErrNoConnections)
	}

	return p, nil
}

// rewire runs the Eppstein–Wang edge relocation loop on g in place.
func rewire(g *core.Graph, names []string, iterations int, cfg builderConfig) error {
	rng := cfg.rng
	picker, err := inDegreePicker(g, names, rng)
	if err != nil {
		return err
	}

	var (
		v, x, y string
		in      []*core.Edge
	)
	for it := 0; it < iterations; it++ {
		// 1. v uniform, resampled until it has an in-edge.
		for {
			v, _ = sampling.Element(rng, names)
			if in, err = g.InEdges(v); err != nil {
				return fmt.Errorf("%s: InEdges(%s): %v: %w", MethodPowerLaw, v, err, ErrConstructFailed)
			}
			if len(in) > 0 {
				break
			}
		}
		// 2. an in-edge of v.
		edge, _ := sampling.Element(rng, in)
		// 3. x uniform.
		x, _ = sampling.Element(rng, names)
		// 4. y by in-degree.
		if cfg.liveDegree {
			if picker, err = inDegreePicker(g, names, rng); err != nil {
				return err
			}
		}
		y = picker.Next()
		// 5. move the edge unless x == y.
		if x == y {
			continue
		}
		if err = g.RemoveEdge(edge.ID); err != nil {
			return fmt.Errorf("%s: RemoveEdge(%s): %v: %w", MethodPowerLaw, edge.ID, err, ErrConstructFailed)
		}
		if _, err = g.AddEdge(x, y, 0); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %v: %w", MethodPowerLaw, x, y, err, ErrConstructFailed)
		}
	}

	return nil
}

// label turns the rewired skeleton into a trust graph and classifies providers.
func label(skel *core.Graph, providers []*network.Provider, catalog service.Catalog,
	reputationProviders int, rng *sampling.Rand) (*network.Graph, error) {
	g := network.NewGraph(catalog)
	for _, p := range providers {
		if err := g.AddProvider(p); err != nil {
			return nil, fmt.Errorf("%s: %v: %w", MethodPowerLaw, err, ErrConstructFailed)
		}
	}
	for _, to := range providers {
		in, err := skel.InEdges(to.Name())
		if err != nil {
			return nil, fmt.Errorf("%s: InEdges(%s): %v: %w", MethodPowerLaw, to.Name(), err, ErrConstructFailed)
		}
		services := to.Services()
		for _, e := range in {
			s, _ := sampling.Element(rng, services)
			t, err := network.NewTrust(s, rng.TrustLevel())
			if err != nil {
				return nil, fmt.Errorf("%s: %v: %w", MethodPowerLaw, err, ErrConstructFailed)
			}
			if _, err = g.Connect(e.From, to.Name(), t); err != nil {
				return nil, fmt.Errorf("%s: Connect(%s→%s): %v: %w", MethodPowerLaw, e.From, to.Name(), err, ErrConstructFailed)
			}
		}
	}

	ranked := append([]*network.Provider(nil), providers...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return g.OutDegree(ranked[i].Name()) > g.OutDegree(ranked[j].Name())
	})
	for i, p := range ranked {
		p.SetReputationOnly(i < reputationProviders)
	}

	return g, nil
}
