// SPDX-License-Identifier: MIT
// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– WeightFunc:       per-edge cost function; may report an edge as unusable.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnweightedGraph if the graph is unweighted and no WeightFunc is given.
//	– ErrVertexNotFound  if the source (or a path target) does not exist in the graph.
//	– ErrNegativeWeight  if a negative or NaN edge weight is detected.
//	– ErrUnreachable     if PathTo is asked for a vertex without a path.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/trustnet/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates an unweighted graph without a WeightFunc.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted or a weight function supplied")

	// ErrVertexNotFound indicates that the specified vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that no path exists from the source to the target.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// WeightFunc returns the traversal cost of an edge. ok == false marks the
// edge as absent for this run. Costs must be non-negative.
type WeightFunc func(e *core.Edge) (w float64, ok bool)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           string     // The ID of the source vertex
	WeightFn         WeightFunc // Edge cost; nil means Edge.Weight
	MaxDistance      float64    // Maximum distance to explore
	InfEdgeThreshold float64    // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(str string) Option {
	return func(o *Options) { o.Source = str }
}

// WithWeightFunc replaces Edge.Weight with a computed cost. Panics on nil.
func WithWeightFunc(fn WeightFunc) Option {
	if fn == nil {
		panic("dijkstra: WithWeightFunc(nil)")
	}

	return func(o *Options) { o.WeightFn = fn }
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics on negative values.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable. Panics on non-positive values.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions returns Options initialized with defaults for the given source:
// Edge.Weight costs, no distance cap, no impassable threshold.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds single-source shortest-path distances and the predecessor
// edge of every reached vertex.
type Result struct {
	// Source is the vertex the run started from.
	Source string

	// Dist maps every vertex to its distance; +Inf when unreachable.
	Dist map[string]float64

	// PrevEdge maps every reached vertex except Source to the last edge of
	// its shortest path.
	PrevEdge map[string]*core.Edge

	// Prev maps every reached vertex except Source to its predecessor on
	// the shortest path.
	Prev map[string]string
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v string) bool {
	d, ok := r.Dist[v]

	return ok && !math.IsInf(d, 1)
}

// PathTo returns the edges of the shortest path Source → v in travel order.
// The path to Source itself is empty.
func (r *Result) PathTo(v string) ([]*core.Edge, error) {
	if _, ok := r.Dist[v]; !ok {
		return nil, ErrVertexNotFound
	}
	if !r.Reachable(v) {
		return nil, ErrUnreachable
	}
	var rev []*core.Edge
	for cur := v; cur != r.Source; cur = r.Prev[cur] {
		rev = append(rev, r.PrevEdge[cur])
	}
	path := make([]*core.Edge, len(rev))
	for i, e := range rev {
		path[len(rev)-1-i] = e
	}

	return path, nil
}
