// SPDX-License-Identifier: MIT
// Package config loads the simulator configuration from defaults, an
// optional YAML file and TRUSTNET_* environment variables, in increasing
// order of precedence. Command-line flags bound to the same keys win over all.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// envPrefix is the environment variable prefix of every setting, e.g.
// TRUSTNET_GRAPH_CONNECTIONS for graph.connections.
const envPrefix = "TRUSTNET"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full simulator configuration.
type Config struct {
	Graph GraphConfig `mapstructure:"graph" yaml:"graph"`
	Unit  UnitConfig  `mapstructure:"unit" yaml:"unit"`
	Run   RunConfig   `mapstructure:"run" yaml:"run"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

// GraphConfig drives the power-law generator.
type GraphConfig struct {
	ServiceProviders    int  `mapstructure:"service_providers" yaml:"service_providers"`
	ReputationProviders int  `mapstructure:"reputation_providers" yaml:"reputation_providers"`
	Connections         int  `mapstructure:"connections" yaml:"connections"`
	Iterations          int  `mapstructure:"iterations" yaml:"iterations"`
	Services            int  `mapstructure:"services" yaml:"services"`
	ServicesPerProvider int  `mapstructure:"services_per_provider" yaml:"services_per_provider"`
	LiveDegree          bool `mapstructure:"live_degree" yaml:"live_degree"`
}

// UnitConfig drives working-unit selection.
type UnitConfig struct {
	Depth         int     `mapstructure:"depth" yaml:"depth"`
	MinSimilarity float64 `mapstructure:"min_similarity" yaml:"min_similarity"`
}

// RunConfig drives orchestration. Seed 0 means "derive from the clock".
type RunConfig struct {
	Seed        uint64 `mapstructure:"seed" yaml:"seed"`
	Retries     int    `mapstructure:"retries" yaml:"retries"`
	Parallel    int    `mapstructure:"parallel" yaml:"parallel"`
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Graph: GraphConfig{
			ServiceProviders:    20,
			ReputationProviders: 5,
			Connections:         200,
			Iterations:          100,
			Services:            10,
		},
		Unit: UnitConfig{Depth: 2, MinSimilarity: 0.5},
		Run:  RunConfig{Retries: 20, Parallel: 1},
		Log:  LogConfig{Level: "info", Format: "console"},
	}
}

// NewViper returns a Viper instance with defaults and environment binding
// installed. Callers may bind flags to it before calling FromViper.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("graph.service_providers", d.Graph.ServiceProviders)
	v.SetDefault("graph.reputation_providers", d.Graph.ReputationProviders)
	v.SetDefault("graph.connections", d.Graph.Connections)
	v.SetDefault("graph.iterations", d.Graph.Iterations)
	v.SetDefault("graph.services", d.Graph.Services)
	v.SetDefault("graph.services_per_provider", d.Graph.ServicesPerProvider)
	v.SetDefault("graph.live_degree", d.Graph.LiveDegree)
	v.SetDefault("unit.depth", d.Unit.Depth)
	v.SetDefault("unit.min_similarity", d.Unit.MinSimilarity)
	v.SetDefault("run.seed", d.Run.Seed)
	v.SetDefault("run.retries", d.Run.Retries)
	v.SetDefault("run.parallel", d.Run.Parallel)
	v.SetDefault("run.metrics_file", d.Run.MetricsFile)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	return v
}

// Load reads the YAML file at path (skipped when path is empty), merges
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	v := NewViper()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}

	return FromViper(v)
}

// ReadFile points v at path and reads it; an empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: failed to read config file %q: %w", path, err)
	}

	return nil
}

// FromViper decodes and validates the state of v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects parameter combinations the generator or the selector
// would refuse, reporting every problem at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	g := c.Graph
	check(g.ServiceProviders >= 0, "graph.service_providers must be >= 0, got %d", g.ServiceProviders)
	check(g.ReputationProviders >= 0, "graph.reputation_providers must be >= 0, got %d", g.ReputationProviders)
	check(g.ServiceProviders+g.ReputationProviders >= 2, "graph needs at least 2 providers, got %d", g.ServiceProviders+g.ReputationProviders)
	check(g.Connections >= 1, "graph.connections must be >= 1, got %d", g.Connections)
	check(g.Iterations >= 0, "graph.iterations must be >= 0, got %d", g.Iterations)
	check(g.Services >= 1, "graph.services must be >= 1, got %d", g.Services)
	check(g.ServicesPerProvider >= 0 && g.ServicesPerProvider <= g.Services,
		"graph.services_per_provider must be in [0,%d], got %d", g.Services, g.ServicesPerProvider)

	u := c.Unit
	check(u.Depth > 1, "unit.depth must be > 1, got %d", u.Depth)
	check(!math.IsNaN(u.MinSimilarity) && u.MinSimilarity > 0 && u.MinSimilarity <= 1,
		"unit.min_similarity must be in (0,1], got %v", u.MinSimilarity)

	check(c.Run.Retries >= 1, "run.retries must be >= 1, got %d", c.Run.Retries)
	check(c.Run.Parallel >= 1, "run.parallel must be >= 1, got %d", c.Run.Parallel)

	_, err := zapcore.ParseLevel(c.Log.Level)
	check(err == nil, "log.level %q is not a zap level", c.Log.Level)
	check(c.Log.Format == "console" || c.Log.Format == "json",
		"log.format must be console or json, got %q", c.Log.Format)

	return errors.Join(errs...)
}
