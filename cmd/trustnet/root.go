// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/trustnet/config"
	"github.com/katalvlaran/trustnet/converters"
	"github.com/katalvlaran/trustnet/service"
	"github.com/katalvlaran/trustnet/simulation"
)

// flagKeys maps persistent flags onto configuration keys.
var flagKeys = []struct{ flag, key string }{
	{"log-level", "log.level"},
	{"log-format", "log.format"},
	{"seed", "run.seed"},
	{"retries", "run.retries"},
	{"parallel", "run.parallel"},
	{"metrics-file", "run.metrics_file"},
	{"service-providers", "graph.service_providers"},
	{"reputation-providers", "graph.reputation_providers"},
	{"connections", "graph.connections"},
	{"iterations", "graph.iterations"},
	{"services", "graph.services"},
	{"services-per-provider", "graph.services_per_provider"},
	{"live-degree", "graph.live_degree"},
	{"depth", "unit.depth"},
	{"min-similarity", "unit.min_similarity"},
}

// app carries the state initialised by the root command.
type app struct {
	configPath string
	cfg        *config.Config
	log        *zap.Logger
	runner     *simulation.Runner

	// Previously exported graph to query instead of generating one.
	loadNodes string
	loadEdges string
}

func newRootCommand() *cobra.Command {
	a := &app{}
	d := config.Default()

	cmd := &cobra.Command{
		Use:   "trustnet",
		Short: "Trust network simulator for service providers",
		Long: "trustnet grows power-law trust graphs between service providers, resolves\n" +
			"transitive reputation along the most trusted paths and selects the best\n" +
			"working unit of providers for a service plan.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.finish()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
	pf.String("log-format", d.Log.Format, "log format (console, json)")
	pf.Uint64("seed", d.Run.Seed, "random seed, 0 derives one from the clock")
	pf.Int("retries", d.Run.Retries, "generation attempts before giving up")
	pf.Int("parallel", d.Run.Parallel, "generation attempts run concurrently")
	pf.String("metrics-file", d.Run.MetricsFile, "write Prometheus metrics to this file on exit")
	pf.Int("service-providers", d.Graph.ServiceProviders, "number of service providers")
	pf.Int("reputation-providers", d.Graph.ReputationProviders, "number of reputation-only providers")
	pf.Int("connections", d.Graph.Connections, "initial random trust edges")
	pf.Int("iterations", d.Graph.Iterations, "preferential rewiring steps")
	pf.Int("services", d.Graph.Services, "size of the service catalog")
	pf.Int("services-per-provider", d.Graph.ServicesPerProvider, "services offered per provider, 0 draws the count")
	pf.Bool("live-degree", d.Graph.LiveDegree, "rank rewiring targets by live in-degree")
	pf.Int("depth", d.Unit.Depth, "trust hops explored around the customer")
	pf.Float64("min-similarity", d.Unit.MinSimilarity, "minimum similarity for a candidate provider")

	cmd.AddCommand(newGenerateCommand(a), newReputationCommand(a), newUnitCommand(a))

	return cmd
}

// init loads the configuration with flag overrides and builds the logger and runner.
func (a *app) init(cmd *cobra.Command) error {
	v := config.NewViper()
	if err := bindFlags(v, cmd.Root()); err != nil {
		return err
	}
	if err := config.ReadFile(v, a.configPath); err != nil {
		return err
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	runner, err := simulation.NewRunner(*cfg, simulation.WithLogger(log))
	if err != nil {
		return err
	}
	a.cfg, a.log, a.runner = cfg, log, runner

	return nil
}

func (a *app) finish() error {
	defer func() { _ = a.log.Sync() }()
	if path := a.cfg.Run.MetricsFile; path != "" {
		if err := a.runner.WriteMetrics(path); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.log.Debug("metrics written", zap.String("path", path))
	}

	return nil
}

func bindFlags(v *viper.Viper, root *cobra.Command) error {
	pf := root.PersistentFlags()
	for _, fk := range flagKeys {
		if err := v.BindPFlag(fk.key, pf.Lookup(fk.flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", fk.flag, err)
		}
	}

	return nil
}

// newLogger builds a zap logger writing to w.
func newLogger(lc config.LogConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	var enc zapcore.Encoder
	switch lc.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)), nil
}

// addSourceFlags registers the flags selecting a previously exported graph.
func addSourceFlags(cmd *cobra.Command, a *app) {
	cmd.Flags().StringVar(&a.loadNodes, "load-nodes", "", "node CSV of a previously exported graph")
	cmd.Flags().StringVar(&a.loadEdges, "load-edges", "", "edge CSV of a previously exported graph")
	cmd.MarkFlagsRequiredTogether("load-nodes", "load-edges")
}

// outcome loads the exported graph when one is named and generates a fresh one otherwise.
func (a *app) outcome(cmd *cobra.Command) (*simulation.Outcome, error) {
	if a.loadNodes == "" {
		return a.runner.Generate(cmd.Context())
	}

	catalog, err := service.MakeServices(a.cfg.Graph.Services)
	if err != nil {
		return nil, err
	}
	nodes, err := os.Open(a.loadNodes)
	if err != nil {
		return nil, err
	}
	defer nodes.Close()
	edges, err := os.Open(a.loadEdges)
	if err != nil {
		return nil, err
	}
	defer edges.Close()

	g, err := converters.ReadGraph(catalog, nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("load %s, %s: %w", a.loadNodes, a.loadEdges, err)
	}
	a.log.Info("loaded graph", zap.String("nodes", a.loadNodes), zap.String("edges", a.loadEdges),
		zap.Int("providers", g.ProviderCount()), zap.Int("edges", g.EdgeCount()))

	return &simulation.Outcome{Graph: g, Catalog: catalog}, nil
}

// writeReport writes rep as YAML to path.
func writeReport(path string, rep simulation.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rep.WriteYAML(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
