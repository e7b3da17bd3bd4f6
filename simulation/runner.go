// SPDX-License-Identifier: MIT
package simulation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trustnet/builder"
	"github.com/katalvlaran/trustnet/config"
	"github.com/katalvlaran/trustnet/network"
	"github.com/katalvlaran/trustnet/sampling"
	"github.com/katalvlaran/trustnet/service"
	"github.com/katalvlaran/trustnet/trust"
	"github.com/katalvlaran/trustnet/workunit"
)

// ErrNoWellFormedGraph indicates that every attempt of the retry budget
// produced a disconnected graph.
var ErrNoWellFormedGraph = errors.New("simulation: no well-formed graph within retry budget")

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("simulation: WithLogger(nil)")
	}

	return func(r *Runner) { r.log = l }
}

// WithClock replaces time.Now for seed derivation when Run.Seed is 0.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("simulation: WithClock(nil)")
	}

	return func(r *Runner) { r.now = now }
}

// Runner executes generation and queries for one configuration.
type Runner struct {
	cfg     config.Config
	log     *zap.Logger
	now     func() time.Time
	reg     *prometheus.Registry
	metrics *metrics
}

// NewRunner validates cfg and returns a Runner with a fresh metrics registry.
func NewRunner(cfg config.Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg: cfg,
		log: zap.NewNop(),
		now: time.Now,
		reg: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.metrics = newMetrics(r.reg)

	return r, nil
}

// Registry exposes the Runner's metrics.
func (r *Runner) Registry() *prometheus.Registry { return r.reg }

// WriteMetrics dumps the registry in the text exposition format.
func (r *Runner) WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

// Outcome is an accepted graph together with its provenance.
type Outcome struct {
	Graph    *network.Graph
	Catalog  service.Catalog
	Seed     uint64
	Attempts int // attempts consumed, including the accepted one

	once     sync.Once
	resolver *trust.Resolver
	err      error
}

// Resolver returns a resolver over the full catalog, built on first use.
func (o *Outcome) Resolver() (*trust.Resolver, error) {
	o.once.Do(func() {
		o.resolver, o.err = trust.NewResolver(o.Graph, o.Catalog)
	})

	return o.resolver, o.err
}

// trial is the result of one generation attempt.
type trial struct {
	graph *network.Graph
	trees int
}

// Generate produces graphs until one is well formed or the retry budget is
// spent. Up to Run.Parallel attempts run concurrently per round.
func (r *Runner) Generate(ctx context.Context) (*Outcome, error) {
	gc := r.cfg.Graph
	catalog, err := service.MakeServices(gc.Services)
	if err != nil {
		return nil, err
	}
	seed := r.cfg.Run.Seed
	if seed == 0 {
		seed = uint64(r.now().UnixNano())
	}
	root := sampling.New(seed)

	r.log.Info("generating trust graph",
		zap.Uint64("seed", seed),
		zap.Int("service_providers", gc.ServiceProviders),
		zap.Int("reputation_providers", gc.ReputationProviders),
		zap.Int("connections", gc.Connections),
		zap.Int("iterations", gc.Iterations),
		zap.Int("services", gc.Services),
		zap.Int("retries", r.cfg.Run.Retries),
		zap.Int("parallel", r.cfg.Run.Parallel),
	)

	budget := r.cfg.Run.Retries
	for next := 0; next < budget; {
		round := min(r.cfg.Run.Parallel, budget-next)
		streams := make([]*sampling.Rand, round)
		for i := range streams {
			streams[i] = root.Derive(uint64(next + i))
		}

		results := make([]trial, round)
		eg, egCtx := errgroup.WithContext(ctx)
		for i := range streams {
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				g, err := r.build(catalog, streams[i])
				if err != nil {
					return err
				}
				results[i] = trial{graph: g, trees: network.SpanningTrees(g)}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, fmt.Errorf("simulation: attempt %d: %w", next+1, err)
		}

		for i, t := range results {
			attempt := next + i + 1
			r.metrics.attempts.Inc()
			if t.trees == 1 {
				r.log.Info("accepted graph",
					zap.Int("attempt", attempt),
					zap.Int("providers", t.graph.ProviderCount()),
					zap.Int("edges", t.graph.EdgeCount()),
				)

				return &Outcome{Graph: t.graph, Catalog: catalog, Seed: seed, Attempts: attempt}, nil
			}
			r.metrics.rejected.Inc()
			r.log.Warn("discarding graph", zap.Int("attempt", attempt), zap.Int("trees", t.trees))
		}
		next += round
	}
	r.log.Error("no suitable graph", zap.Int("attempts", budget))

	return nil, fmt.Errorf("%w: %d attempts", ErrNoWellFormedGraph, budget)
}

// build runs one generator attempt on its own random stream.
func (r *Runner) build(catalog service.Catalog, rng *sampling.Rand) (*network.Graph, error) {
	gc := r.cfg.Graph
	opts := []builder.BuilderOption{builder.WithRand(rng)}
	if gc.LiveDegree {
		opts = append(opts, builder.WithLiveDegree())
	}
	if gc.ServicesPerProvider > 0 {
		opts = append(opts, builder.WithServicesPerProvider(gc.ServicesPerProvider))
	}

	return builder.PowerLaw(gc.ServiceProviders, gc.ReputationProviders, gc.Connections, gc.Iterations, catalog, opts...)
}

// Reputation resolves from → to for the named service on an accepted graph.
func (r *Runner) Reputation(out *Outcome, from, to, serviceName string) (float64, error) {
	s, err := out.Catalog.Lookup(serviceName)
	if err != nil {
		return 0, err
	}
	res, err := out.Resolver()
	if err != nil {
		return 0, err
	}
	rep, err := res.Reputation(from, to, s)
	if err != nil {
		return 0, err
	}
	r.log.Debug("reputation", zap.String("from", from), zap.String("to", to),
		zap.String("service", serviceName), zap.Float64("value", rep))

	return rep, nil
}

// SelectUnit runs FindBest for customer and the named plan using the
// configured depth and similarity threshold.
func (r *Runner) SelectUnit(ctx context.Context, out *Outcome, customer string, planNames []string) (workunit.Selection, bool, error) {
	plan := make([]service.Service, 0, len(planNames))
	for _, n := range planNames {
		s, err := out.Catalog.Lookup(n)
		if err != nil {
			return workunit.Selection{}, false, err
		}
		plan = append(plan, s)
	}
	res, err := out.Resolver()
	if err != nil {
		return workunit.Selection{}, false, err
	}

	sel, found, err := workunit.FindBest(ctx, res, customer, plan, r.cfg.Unit.Depth, r.cfg.Unit.MinSimilarity)
	if err != nil {
		return workunit.Selection{}, false, err
	}
	r.metrics.enumerated.Add(float64(sel.Enumerated))
	if !found {
		r.log.Info("no working unit", zap.String("customer", customer),
			zap.Strings("plan", planNames), zap.Int("enumerated", sel.Enumerated))

		return sel, false, nil
	}
	r.metrics.bestScore.Set(sel.Score)
	r.log.Info("selected working unit", zap.String("customer", customer),
		zap.Strings("plan", planNames), zap.Float64("score", sel.Score),
		zap.Int("enumerated", sel.Enumerated), zap.Int("scored", sel.Scored))

	return sel, true, nil
}
