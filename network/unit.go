// SPDX-License-Identifier: MIT
package network

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/trustnet/service"
)

var (
	// ErrDuplicateService indicates a service already assigned within a unit.
	ErrDuplicateService = errors.New("network: service already present in working unit")

	// ErrReputationOnly indicates an attempt to use a reputation-only provider as a supplier.
	ErrReputationOnly = errors.New("network: reputation-only provider cannot supply services")

	// ErrNilProvider indicates a nil provider.
	ErrNilProvider = errors.New("network: nil provider")
)

// WorkingUnit assigns exactly one supplying provider to each service of a
// plan and keeps the reverse provider → services mapping.
// Iteration follows insertion order.
type WorkingUnit struct {
	services  []service.Service
	supplier  map[service.Service]*Provider
	providers []*Provider
	covers    map[*Provider][]service.Service
}

// NewWorkingUnit returns an empty unit.
func NewWorkingUnit() *WorkingUnit {
	return &WorkingUnit{
		supplier: make(map[service.Service]*Provider),
		covers:   make(map[*Provider][]service.Service),
	}
}

// Add assigns p as supplier of s.
func (u *WorkingUnit) Add(p *Provider, s service.Service) error {
	if p == nil {
		return ErrNilProvider
	}
	if _, dup := u.supplier[s]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateService, s)
	}
	if p.ReputationOnly() {
		return fmt.Errorf("%w: %s", ErrReputationOnly, p.Name())
	}
	u.services = append(u.services, s)
	u.supplier[s] = p
	if _, known := u.covers[p]; !known {
		u.providers = append(u.providers, p)
	}
	u.covers[p] = append(u.covers[p], s)

	return nil
}

// Supplier returns the provider assigned to s.
func (u *WorkingUnit) Supplier(s service.Service) (*Provider, bool) {
	p, ok := u.supplier[s]

	return p, ok
}

// Services returns the assigned services in insertion order.
func (u *WorkingUnit) Services() []service.Service {
	return append([]service.Service(nil), u.services...)
}

// Providers returns the distinct member providers in insertion order.
func (u *WorkingUnit) Providers() []*Provider {
	return append([]*Provider(nil), u.providers...)
}

// ServicesOf returns the services p covers within the unit.
func (u *WorkingUnit) ServicesOf(p *Provider) []service.Service {
	return append([]service.Service(nil), u.covers[p]...)
}

// Len returns the number of assigned services.
func (u *WorkingUnit) Len() int { return len(u.services) }

// String renders one "Service -> Provider" line per assignment.
func (u *WorkingUnit) String() string {
	var sb strings.Builder
	sb.WriteString("-- Working unit --\n")
	for _, s := range u.services {
		fmt.Fprintf(&sb, "Service %s -> Provider %s;\n", s, u.supplier[s])
	}
	sb.WriteString("------------------\n")

	return sb.String()
}
