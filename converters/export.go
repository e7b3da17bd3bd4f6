// SPDX-License-Identifier: MIT
package converters

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/trustnet/network"
)

// serviceTagSuffix follows every service name in the node stream.
const serviceTagSuffix = "_1"

// Export writes the node stream to nodes and the edge stream to edges.
func Export(g *network.Graph, nodes, edges io.Writer) error {
	if err := WriteNodes(nodes, g); err != nil {
		return err
	}

	return WriteEdges(edges, g)
}

// WriteNodes writes one "name,service_tag..." line per provider.
func WriteNodes(w io.Writer, g *network.Graph) error {
	cw := csv.NewWriter(w)
	for _, p := range g.Providers() {
		rec := []string{p.Name()}
		for _, s := range p.Services() {
			rec = append(rec, s.Name()+serviceTagSuffix)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("converters: write node %s: %w", p.Name(), err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteEdges writes one "src,dst,service=level..." line per connected
// ordered pair, pairs ordered by source then destination insertion order.
func WriteEdges(w io.Writer, g *network.Graph) error {
	cw := csv.NewWriter(w)
	providers := g.Providers()
	for _, src := range providers {
		for _, dst := range providers {
			es := g.EdgesBetween(src.Name(), dst.Name())
			if len(es) == 0 {
				continue
			}
			rec := []string{src.FullName(), dst.FullName()}
			for _, e := range es {
				rec = append(rec, e.Trust.Service.Name()+"="+formatLevel(e.Trust.Level))
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("converters: write edges %s→%s: %w", src.Name(), dst.Name(), err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteDOT renders g as a Graphviz digraph.
func WriteDOT(w io.Writer, g *network.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph {")
	linked := make(map[string]bool, g.ProviderCount())
	for _, e := range g.Edges() {
		from, _ := g.Provider(e.From)
		to, _ := g.Provider(e.To)
		linked[e.From], linked[e.To] = true, true
		fmt.Fprintf(bw, "  %s -> %s [label=%q];\n", from.FullName(), to.FullName(), e.Trust.Label())
	}
	for _, p := range g.Providers() {
		if !linked[p.Name()] {
			fmt.Fprintf(bw, "  %s;\n", p.FullName())
		}
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func formatLevel(level float64) string {
	return strconv.FormatFloat(level, 'f', -1, 64)
}
