// SPDX-License-Identifier: MIT
package converters

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/trustnet/network"
	"github.com/katalvlaran/trustnet/service"
)

var (
	// ErrMalformedLine indicates a node or edge line that cannot be parsed.
	ErrMalformedLine = errors.New("converters: malformed line")

	// ErrNilCatalog indicates ReadGraph without a service catalog.
	ErrNilCatalog = errors.New("converters: catalog is empty")
)

// Full-name suffixes written by network.Provider.FullName.
const (
	suffixReputation = "R"
	suffixService    = "S"
)

// ReadGraph rebuilds a graph from a node stream and an edge stream written
// by Export. Service names are resolved against catalog. Providers named with
// an R suffix in the edge stream are flagged reputation-only.
func ReadGraph(catalog service.Catalog, nodes, edges io.Reader) (*network.Graph, error) {
	if len(catalog) == 0 {
		return nil, ErrNilCatalog
	}
	g := network.NewGraph(catalog)

	nodeRecs, err := readAll(nodes)
	if err != nil {
		return nil, fmt.Errorf("converters: read nodes: %w", err)
	}
	for i, rec := range nodeRecs {
		if err := readNode(g, catalog, rec); err != nil {
			return nil, fmt.Errorf("converters: node line %d: %w", i+1, err)
		}
	}

	edgeRecs, err := readAll(edges)
	if err != nil {
		return nil, fmt.Errorf("converters: read edges: %w", err)
	}
	for i, rec := range edgeRecs {
		if err := readEdges(g, catalog, rec); err != nil {
			return nil, fmt.Errorf("converters: edge line %d: %w", i+1, err)
		}
	}

	return g, nil
}

func readAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return cr.ReadAll()
}

func readNode(g *network.Graph, catalog service.Catalog, rec []string) error {
	if len(rec) < 2 || rec[0] == "" {
		return fmt.Errorf("%w: %q", ErrMalformedLine, strings.Join(rec, ","))
	}
	services := make([]service.Service, 0, len(rec)-1)
	for _, tag := range rec[1:] {
		s, err := catalog.Lookup(strings.TrimSuffix(tag, serviceTagSuffix))
		if err != nil {
			return err
		}
		services = append(services, s)
	}
	p, err := network.NewProvider(rec[0], services)
	if err != nil {
		return err
	}

	return g.AddProvider(p)
}

func readEdges(g *network.Graph, catalog service.Catalog, rec []string) error {
	if len(rec) < 3 {
		return fmt.Errorf("%w: %q", ErrMalformedLine, strings.Join(rec, ","))
	}
	from, err := resolve(g, rec[0])
	if err != nil {
		return err
	}
	to, err := resolve(g, rec[1])
	if err != nil {
		return err
	}
	for _, field := range rec[2:] {
		name, raw, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("%w: label %q", ErrMalformedLine, field)
		}
		s, err := catalog.Lookup(name)
		if err != nil {
			return err
		}
		level, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: level %q: %v", ErrMalformedLine, raw, err)
		}
		t, err := network.NewTrust(s, level)
		if err != nil {
			return err
		}
		if _, err := g.Connect(from, to, t); err != nil {
			return err
		}
	}

	return nil
}

// resolve maps a full name back to a provider name and applies the
// reputation-only flag. Plain names are accepted as well.
func resolve(g *network.Graph, full string) (string, error) {
	if _, ok := g.Provider(full); ok {
		return full, nil
	}
	for _, suffix := range []string{suffixReputation, suffixService} {
		name, found := strings.CutSuffix(full, suffix)
		if !found {
			continue
		}
		if p, ok := g.Provider(name); ok {
			p.SetReputationOnly(suffix == suffixReputation)
			return name, nil
		}
	}

	return "", fmt.Errorf("%w: %s", network.ErrUnknownProvider, full)
}
