// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trustnet/config"
	"github.com/katalvlaran/trustnet/service"
	"github.com/katalvlaran/trustnet/simulation"
)

// graphArgs describe a small graph that is connected on almost every attempt.
var graphArgs = []string{
	"--seed", "5",
	"--service-providers", "8",
	"--reputation-providers", "2",
	"--connections", "60",
	"--iterations", "20",
	"--services", "6",
	"--log-level", "error",
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func withGraph(args ...string) []string {
	return append(append([]string{}, args...), graphArgs...)
}

func TestGenerate_WritesDOTAndFiles(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "nodes.csv")
	edges := filepath.Join(dir, "edges.csv")
	report := filepath.Join(dir, "report.yaml")

	out, _, err := run(t, withGraph("generate", "--nodes", nodes, "--edges", edges, "--report", report)...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph {\n"), out)
	assert.True(t, strings.HasSuffix(out, "}\n"), out)

	raw, err := os.ReadFile(nodes)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(raw)), "\n"), 10)

	raw, err = os.ReadFile(report)
	require.NoError(t, err)
	var rep simulation.Report
	require.NoError(t, yaml.Unmarshal(raw, &rep))
	assert.Equal(t, uint64(5), rep.Seed)
	assert.Equal(t, 10, rep.Providers)
	assert.Equal(t, 2, rep.ReputationOnly)
	assert.Equal(t, 6, rep.Services)
	assert.Nil(t, rep.Unit)
}

func TestGenerate_Deterministic(t *testing.T) {
	first, _, err := run(t, withGraph("generate")...)
	require.NoError(t, err)
	second, _, err := run(t, withGraph("generate", "--parallel", "3")...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQueries_OnExportedGraph(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "nodes.csv")
	edges := filepath.Join(dir, "edges.csv")
	_, _, err := run(t, withGraph("generate", "--nodes", nodes, "--edges", edges)...)
	require.NoError(t, err)

	out, _, err := run(t, withGraph("reputation", "--load-nodes", nodes, "--load-edges", edges,
		"--from", "P00", "--to", "P01", "--service", "S02")...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "reputation(P00 -> P01, S02) = "), out)

	report := filepath.Join(dir, "unit.yaml")
	out, _, err = run(t, withGraph("unit", "--load-nodes", nodes, "--load-edges", edges,
		"--customer", "P00", "--plan", "S01,S02", "--depth", "3", "--min-similarity", "0.3",
		"--report", report)...)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	raw, err := os.ReadFile(report)
	require.NoError(t, err)
	var rep simulation.Report
	require.NoError(t, yaml.Unmarshal(raw, &rep))
	assert.Equal(t, 10, rep.Providers)
	if strings.HasPrefix(out, "no working unit") {
		assert.Nil(t, rep.Unit)
	} else {
		require.NotNil(t, rep.Unit)
		assert.Equal(t, "P00", rep.Unit.Customer)
		assert.Len(t, rep.Unit.Assignments, 2)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target error
		substr string
	}{
		{name: "InvalidDepth", args: withGraph("generate", "--depth", "1"), target: config.ErrInvalid},
		{name: "InvalidLogFormat", args: withGraph("generate", "--log-format", "xml"), target: config.ErrInvalid},
		{name: "UnknownService", args: withGraph("reputation", "--from", "P00", "--to", "P01", "--service", "S99"), target: service.ErrUnknownService},
		{name: "MissingFlag", args: withGraph("reputation", "--from", "P00", "--to", "P01"), substr: "service"},
		{name: "LoadPairIncomplete", args: withGraph("unit", "--customer", "P00", "--plan", "S01,S02", "--load-nodes", "x.csv"), substr: "load-edges"},
		{name: "MissingConfigFile", args: withGraph("generate", "--config", "does-not-exist.yaml"), substr: "does-not-exist.yaml"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.Error(t, err)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
			if tc.substr != "" {
				assert.Contains(t, err.Error(), tc.substr)
			}
		})
	}
}

func TestConfigFileAndMetrics(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "trustnet.yaml")
	metrics := filepath.Join(dir, "metrics.prom")
	cfg := `graph:
  service_providers: 8
  reputation_providers: 2
  connections: 60
  iterations: 20
  services: 6
run:
  seed: 5
log:
  level: error
  format: json
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	fromFile, _, err := run(t, "generate", "--config", cfgPath, "--metrics-file", metrics)
	require.NoError(t, err)
	fromFlags, _, err := run(t, withGraph("generate")...)
	require.NoError(t, err)
	assert.Equal(t, fromFlags, fromFile)

	raw, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "trustnet_graph_attempts_total")
}

func TestLogging_GoesToStderr(t *testing.T) {
	args := withGraph("generate")
	args = append(args, "--log-level", "info", "--log-format", "json")
	out, stderr, err := run(t, args...)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"accepted graph"`)
	assert.NotContains(t, out, "accepted graph")
}
