// SPDX-License-Identifier: MIT
package network

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/trustnet/service"
)

var (
	// ErrEmptyName indicates a provider without a name.
	ErrEmptyName = errors.New("network: provider name is empty")

	// ErrNoServices indicates a provider created without any service.
	ErrNoServices = errors.New("network: provider must supply at least one service")
)

// Name decorations of FullName.
const (
	suffixReputationOnly = "R"
	suffixServing        = "S"
)

// Provider is a trust-network participant supplying a fixed set of services.
type Provider struct {
	name           string
	services       []service.Service // sorted by id, no duplicates
	reputationOnly bool
}

// NewProvider validates and builds a provider. Duplicate services collapse.
func NewProvider(name string, services []service.Service) (*Provider, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(services) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoServices, name)
	}
	set := make([]service.Service, 0, len(services))
	seen := make(map[int]bool, len(services))
	for _, s := range services {
		if seen[s.ID()] {
			continue
		}
		seen[s.ID()] = true
		set = append(set, s)
	}
	sort.Slice(set, func(i, j int) bool { return set[i].ID() < set[j].ID() })

	return &Provider{name: name, services: set}, nil
}

// Name returns the bare provider name, e.g. "P07".
func (p *Provider) Name() string { return p.name }

// FullName appends "R" for reputation-only providers and "S" otherwise.
func (p *Provider) FullName() string {
	if p.reputationOnly {
		return p.name + suffixReputationOnly
	}

	return p.name + suffixServing
}

// String implements fmt.Stringer.
func (p *Provider) String() string { return p.name }

// Services returns a copy of the provider's services in catalog order.
func (p *Provider) Services() []service.Service {
	return append([]service.Service(nil), p.services...)
}

// ReputationOnly reports whether p only routes trust and never supplies directly.
func (p *Provider) ReputationOnly() bool { return p.reputationOnly }

// SetReputationOnly assigns the classification made after graph generation.
func (p *Provider) SetReputationOnly(v bool) { p.reputationOnly = v }

// Offers reports whether s is literally one of p's services.
func (p *Provider) Offers(s service.Service) bool {
	for _, own := range p.services {
		if own == s {
			return true
		}
	}

	return false
}

// Provide returns the best similarity between any own service and s;
// 0 when nothing is related.
func (p *Provider) Provide(s service.Service) float64 {
	best := 0.0
	for _, own := range p.services {
		if sim := service.Similarity(own, s); sim > best {
			best = sim
		}
	}

	return best
}
