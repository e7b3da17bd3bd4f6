// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge costs.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold O(E) stale entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Without a WeightFunc, all edges are scanned upfront (O(E)) to fail fast on negative weights.
//   - Any edge whose cost is ≥ InfEdgeThreshold is an impassable wall.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - Heap ties are broken by push order and edges are relaxed in Seq order,
//     so equal-cost paths resolve identically on every run.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/trustnet/core"
)

// Dijkstra computes shortest distances from Options.Source to all other
// vertices of g.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted unless WithWeightFunc is given (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge cost may be negative or NaN (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() && cfg.WeightFn == nil {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// Fail fast on stored weights; computed costs are checked during relaxation.
	if cfg.WeightFn == nil {
		for _, e := range g.Edges() {
			if e.Weight < 0 || math.IsNaN(e.Weight) {
				return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source:   cfg.Source,
			Dist:     make(map[string]float64, V),
			PrevEdge: make(map[string]*core.Edge, V),
			Prev:     make(map[string]string, V),
		},
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	res     *Result
	visited map[string]bool
	pq      nodePQ
	pushed  uint64 // heap insertion counter, used for tie-breaking
}

// init sets dist[v] = +Inf for all v and pushes Source with distance 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.res.Dist[v] = math.Inf(1)
	}
	r.res.Dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process is the core loop. It terminates when the heap is empty or the
// smallest pending distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u in Seq order and improves neighbor
// distances. Only strictly shorter paths replace a recorded predecessor.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		if e.Directed && e.From != u {
			continue
		}
		v := e.To
		if !e.Directed && v == u {
			v = e.From
		}
		if r.visited[v] {
			continue
		}

		w, ok := r.cost(e)
		if !ok {
			continue
		}
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.res.Dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.res.Dist[v] {
			continue
		}

		r.res.Dist[v] = newDist
		r.res.PrevEdge[v] = e
		r.res.Prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

// cost resolves the traversal cost of e under the configured WeightFunc.
func (r *runner) cost(e *core.Edge) (float64, bool) {
	if r.options.WeightFn == nil {
		return e.Weight, true
	}

	return r.options.WeightFn(e)
}

func (r *runner) push(id string, dist float64) {
	r.pushed++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.pushed})
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
