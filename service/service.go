// SPDX-License-Identifier: MIT
package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrCatalogMismatch indicates two services built from different catalog sizes were compared.
	ErrCatalogMismatch = errors.New("service: services belong to different catalogs")

	// ErrBadCapacity indicates a catalog of fewer than one service was requested.
	ErrBadCapacity = errors.New("service: catalog capacity must be >= 1")

	// ErrUnknownService indicates a name that does not denote a service of the catalog.
	ErrUnknownService = errors.New("service: unknown service")
)

// namePrefix is the leading letter of every service name ("S01", "S02", ...).
const namePrefix = "S"

// Service is an immutable node of the similarity tree.
// The zero value is not a valid service.
type Service struct {
	id       int
	capacity int
}

// ID returns the 1-based position of s inside its catalog.
func (s Service) ID() int { return s.id }

// Capacity returns the size of the catalog s was built from.
func (s Service) Capacity() int { return s.capacity }

// Name renders s as "S%02d".
func (s Service) Name() string { return fmt.Sprintf("%s%02d", namePrefix, s.id) }

// String implements fmt.Stringer.
func (s Service) String() string { return s.Name() }

// Valid reports whether s was produced by a catalog.
func (s Service) Valid() bool { return s.id >= 1 && s.id <= s.capacity }

// Height returns ceil(log2(capacity)) of the tree s belongs to.
func (s Service) Height() int { return height(s.capacity) }

func height(capacity int) int {
	if capacity <= 1 {
		return 0
	}

	return int(math.Ceil(math.Log2(float64(capacity))))
}

// Distance returns the number of halving steps that make the ids of a and b equal.
// It panics with ErrCatalogMismatch when a and b come from different catalogs.
func Distance(a, b Service) int {
	if a.capacity != b.capacity {
		panic(fmt.Errorf("%w: %d vs %d", ErrCatalogMismatch, a.capacity, b.capacity))
	}
	x, y, d := a.id, b.id, 0
	for x != y {
		if x > y {
			x /= 2
		} else {
			y /= 2
		}
		d++
	}

	return d
}

// Similarity returns max(0, 1 - Distance(a,b)/height).
// A single-service catalog has height 0; its only service is fully similar to itself.
// It panics with ErrCatalogMismatch when a and b come from different catalogs.
func Similarity(a, b Service) float64 {
	d := Distance(a, b)
	h := height(a.capacity)
	if h == 0 {
		return 1
	}
	sim := 1 - float64(d)/float64(h)
	if sim < 0 {
		return 0
	}

	return sim
}

// Compare is the error-returning form of Similarity.
func Compare(a, b Service) (float64, error) {
	if a.capacity != b.capacity {
		return 0, fmt.Errorf("%w: %d vs %d", ErrCatalogMismatch, a.capacity, b.capacity)
	}

	return Similarity(a, b), nil
}

// Catalog is an ordered list of services sharing one capacity.
type Catalog []Service

// MakeServices builds the catalog S01..Snn of n services with ids 1..n.
func MakeServices(n int) (Catalog, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, n)
	}
	c := make(Catalog, n)
	for i := range c {
		c[i] = Service{id: i + 1, capacity: n}
	}

	return c, nil
}

// Lookup resolves a service name such as "S03" against c.
func (c Catalog) Lookup(name string) (Service, error) {
	digits, ok := strings.CutPrefix(name, namePrefix)
	if !ok {
		return Service{}, fmt.Errorf("%w: %q", ErrUnknownService, name)
	}
	id, err := strconv.Atoi(digits)
	if err != nil || id < 1 || id > len(c) {
		return Service{}, fmt.Errorf("%w: %q", ErrUnknownService, name)
	}

	return c[id-1], nil
}

// Names returns the names of c in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, len(c))
	for i, s := range c {
		out[i] = s.Name()
	}

	return out
}
