// SPDX-License-Identifier: MIT
package simulation_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trustnet/config"
	"github.com/katalvlaran/trustnet/network"
	"github.com/katalvlaran/trustnet/simulation"
)

// dense returns a configuration whose graphs are connected almost surely.
func dense(seed uint64) config.Config {
	cfg := config.Default()
	cfg.Graph.ServiceProviders = 8
	cfg.Graph.ReputationProviders = 2
	cfg.Graph.Connections = 60
	cfg.Graph.Iterations = 20
	cfg.Graph.Services = 6
	cfg.Run.Seed = seed

	return cfg
}

// sparse returns a configuration that can never be connected.
func sparse() config.Config {
	cfg := config.Default()
	cfg.Graph.ServiceProviders = 5
	cfg.Graph.ReputationProviders = 0
	cfg.Graph.Connections = 1
	cfg.Graph.Iterations = 0
	cfg.Run.Seed = 3
	cfg.Run.Retries = 4

	return cfg
}

func counter(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		m := f.GetMetric()[0]
		if c := m.GetCounter(); c != nil {
			return c.GetValue()
		}
		return m.GetGauge().GetValue()
	}
	t.Fatalf("metric %s not found", name)

	return 0
}

func edgeLabels(g *network.Graph) []string {
	out := make([]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, e.From+">"+e.To+":"+e.Trust.Label())
	}

	return out
}

func TestNewRunner_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Unit.Depth = 1
	_, err := simulation.NewRunner(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestGenerate_Accepts(t *testing.T) {
	r, err := simulation.NewRunner(dense(11))
	require.NoError(t, err)

	out, err := r.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, out.Graph.ProviderCount())
	assert.Equal(t, 60, out.Graph.EdgeCount())
	assert.True(t, network.IsWellFormed(out.Graph))
	assert.Equal(t, uint64(11), out.Seed)
	assert.Equal(t, float64(out.Attempts), counter(t, r.Registry(), "trustnet_graph_attempts_total"))
}

func TestGenerate_ReproducibleAcrossParallelism(t *testing.T) {
	serial, err := simulation.NewRunner(dense(5))
	require.NoError(t, err)
	a, err := serial.Generate(context.Background())
	require.NoError(t, err)

	cfg := dense(5)
	cfg.Run.Parallel = 4
	parallel, err := simulation.NewRunner(cfg)
	require.NoError(t, err)
	b, err := parallel.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Attempts, b.Attempts)
	assert.Equal(t, edgeLabels(a.Graph), edgeLabels(b.Graph))
}

func TestGenerate_RetryBudget(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	r, err := simulation.NewRunner(sparse(), simulation.WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = r.Generate(context.Background())
	assert.ErrorIs(t, err, simulation.ErrNoWellFormedGraph)
	assert.Equal(t, 4.0, counter(t, r.Registry(), "trustnet_graph_attempts_total"))
	assert.Equal(t, 4.0, counter(t, r.Registry(), "trustnet_graph_rejected_total"))
	assert.Equal(t, 4, logs.FilterMessage("discarding graph").Len())
}

func TestGenerate_ClockSeed(t *testing.T) {
	stamp := time.Unix(0, 123456789)
	r, err := simulation.NewRunner(dense(0), simulation.WithClock(func() time.Time { return stamp }))
	require.NoError(t, err)

	out, err := r.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(123456789), out.Seed)
}

func TestGenerate_Cancelled(t *testing.T) {
	r, err := simulation.NewRunner(dense(1))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueriesAndReport(t *testing.T) {
	r, err := simulation.NewRunner(dense(21))
	require.NoError(t, err)
	out, err := r.Generate(context.Background())
	require.NoError(t, err)

	rep, err := r.Reputation(out, "P00", "P01", "S01")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rep, -1.0)
	assert.LessOrEqual(t, rep, 1.0)

	_, err = r.Reputation(out, "P00", "P01", "S99")
	assert.Error(t, err)

	sel, found, err := r.SelectUnit(context.Background(), out, "P00", []string{"S01", "S02"})
	require.NoError(t, err)
	assert.Equal(t, float64(sel.Enumerated), counter(t, r.Registry(), "trustnet_working_units_enumerated_total"))

	var selPtr = &sel
	if !found {
		selPtr = nil
	}
	report := simulation.NewReport(out, "P00", selPtr)
	assert.Equal(t, 10, report.Providers)
	assert.Equal(t, 2, report.ReputationOnly)
	assert.NotEmpty(t, report.RunID)

	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf))
	var decoded simulation.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report, decoded)
}

func TestWriteMetrics(t *testing.T) {
	r, err := simulation.NewRunner(dense(2))
	require.NoError(t, err)
	_, err = r.Generate(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, r.WriteMetrics(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "trustnet_graph_attempts_total")
}
