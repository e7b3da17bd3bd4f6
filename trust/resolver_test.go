// SPDX-License-Identifier: MIT
package trust_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trustnet/network"
	"github.com/katalvlaran/trustnet/service"
	"github.com/katalvlaran/trustnet/trust"
)

// fixture is a hand-built trust graph over a five-service catalog.
type fixture struct {
	c service.Catalog
	g *network.Graph
}

func newFixture(t *testing.T, names ...string) *fixture {
	t.Helper()
	c, err := service.MakeServices(5)
	require.NoError(t, err)
	g := network.NewGraph(c)
	for _, n := range names {
		p, err := network.NewProvider(n, c[:1])
		require.NoError(t, err)
		require.NoError(t, g.AddProvider(p))
	}

	return &fixture{c: c, g: g}
}

func (f *fixture) connect(t *testing.T, from, to string, s int, level float64) {
	t.Helper()
	_, err := f.g.Connect(from, to, network.Trust{Service: f.c[s-1], Level: level})
	require.NoError(t, err)
}

func (f *fixture) resolver(t *testing.T) *trust.Resolver {
	t.Helper()
	r, err := trust.NewResolver(f.g, f.c)
	require.NoError(t, err)

	return r
}

func TestReputation_NoPathIsZero(t *testing.T) {
	f := newFixture(t, "A", "B", "C")
	f.connect(t, "A", "B", 1, 0.9)
	r := f.resolver(t)

	rep, err := r.Reputation("B", "A", f.c[0])
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep)

	rep, err = r.Reputation("A", "C", f.c[0])
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep)
}

func TestReputation_SingleEdge(t *testing.T) {
	f := newFixture(t, "A", "B")
	f.connect(t, "A", "B", 1, 0.8)

	rep, err := f.resolver(t).Reputation("A", "B", f.c[0])
	require.NoError(t, err)
	assert.InDelta(t, 0.8, rep, 1e-12)
}

func TestReputation_WeakestHop(t *testing.T) {
	f := newFixture(t, "A", "B", "C")
	f.connect(t, "A", "B", 1, 0.9)
	f.connect(t, "B", "C", 1, 0.5)

	rep, err := f.resolver(t).Reputation("A", "C", f.c[0])
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rep, 1e-12)
}

func TestReputation_SimilarityScalesLevel(t *testing.T) {
	f := newFixture(t, "A", "B")
	f.connect(t, "A", "B", 2, 0.9) // S02 vs S01: similarity 2/3

	rep, err := f.resolver(t).Reputation("A", "B", f.c[0])
	require.NoError(t, err)
	assert.InDelta(t, 0.6, rep, 1e-12)
}

func TestReputation_ZeroSimilarityEdgeIsAbsent(t *testing.T) {
	f := newFixture(t, "A", "B")
	f.connect(t, "A", "B", 4, 1) // S04 vs S03: similarity 0
	r := f.resolver(t)

	rep, err := r.Reputation("A", "B", f.c[2])
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep)

	path, err := r.Path("A", "B", f.c[2])
	require.NoError(t, err)
	assert.Empty(t, path)

	// the same edge is usable for its own service
	rep, err = r.Reputation("A", "B", f.c[3])
	require.NoError(t, err)
	assert.Equal(t, 1.0, rep)
}

func TestReputation_PrefersTrustedDetour(t *testing.T) {
	f := newFixture(t, "A", "B", "C")
	f.connect(t, "A", "C", 1, -0.9) // cost 1/1.1
	f.connect(t, "A", "B", 1, 1)    // cost 1/3
	f.connect(t, "B", "C", 1, 1)    // cost 1/3
	r := f.resolver(t)

	path, err := r.Path("A", "C", f.c[0])
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "B", path[0].To)

	rep, err := r.Reputation("A", "C", f.c[0])
	require.NoError(t, err)
	assert.Equal(t, 1.0, rep)
}

func TestReputation_NegativeTrustPropagates(t *testing.T) {
	f := newFixture(t, "A", "B", "C")
	f.connect(t, "A", "B", 1, 0.7)
	f.connect(t, "B", "C", 1, -0.4)

	rep, err := f.resolver(t).Reputation("A", "C", f.c[0])
	require.NoError(t, err)
	assert.InDelta(t, -0.4, rep, 1e-12)
}

func TestReputation_SelfIsZero(t *testing.T) {
	f := newFixture(t, "A", "B")
	f.connect(t, "A", "B", 1, 0.8)

	rep, err := f.resolver(t).Reputation("A", "A", f.c[0])
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep)
}

func TestReputation_Errors(t *testing.T) {
	f := newFixture(t, "A", "B")
	f.connect(t, "A", "B", 1, 0.8)

	r, err := trust.NewResolver(f.g, f.c[:2])
	require.NoError(t, err)
	assert.Len(t, r.Services(), 2)

	_, err = r.Reputation("A", "B", f.c[4])
	assert.ErrorIs(t, err, trust.ErrUnknownService)

	_, err = r.Reputation("A", "Z", f.c[0])
	assert.ErrorIs(t, err, network.ErrUnknownProvider)

	other, err := service.MakeServices(9)
	require.NoError(t, err)
	_, err = r.Reputation("A", "B", other[0])
	assert.ErrorIs(t, err, trust.ErrUnknownService)

	_, err = trust.NewResolver(f.g, other)
	assert.ErrorIs(t, err, service.ErrCatalogMismatch)

	_, err = trust.NewResolver(nil, f.c)
	assert.ErrorIs(t, err, trust.ErrNilGraph)
}

func TestReputation_ParallelEdgesPickCheapest(t *testing.T) {
	f := newFixture(t, "A", "B")
	f.connect(t, "A", "B", 5, 1)   // S05 vs S01: similarity 1/3, cost 1
	f.connect(t, "A", "B", 1, 0.2) // similarity 1, cost 1/2.2

	rep, err := f.resolver(t).Reputation("A", "B", f.c[0])
	require.NoError(t, err)
	assert.InDelta(t, 0.2, rep, 1e-12)
}

func TestResolver_ConcurrentQueries(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("P%02d", i)
	}
	f := newFixture(t, names...)
	for i := 0; i+1 < len(names); i++ {
		f.connect(t, names[i], names[i+1], i%5+1, 0.5)
	}
	r := f.resolver(t)

	want, err := r.Reputation("P00", "P09", f.c[0])
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Reputation("P00", "P09", f.c[0])
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
