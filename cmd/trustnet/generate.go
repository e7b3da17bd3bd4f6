// SPDX-License-Identifier: MIT
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trustnet/converters"
	"github.com/katalvlaran/trustnet/network"
	"github.com/katalvlaran/trustnet/simulation"
)

type generateOptions struct {
	nodes  string
	edges  string
	dot    string
	report string
}

func newGenerateCommand(a *app) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a well-formed trust graph and export it",
		Long: "generate grows power-law trust graphs until one forms a single connected\n" +
			"component, then prints it in DOT form and optionally writes the node and\n" +
			"edge CSV files and a YAML run report.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.runner.Generate(cmd.Context())
			if err != nil {
				return err
			}

			return opts.export(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&opts.nodes, "nodes", "", "write the node CSV to this file")
	cmd.Flags().StringVar(&opts.edges, "edges", "", "write the edge CSV to this file")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write the DOT graph to this file instead of stdout")
	cmd.Flags().StringVar(&opts.report, "report", "", "write a YAML run report to this file")

	return cmd
}

func (o *generateOptions) export(stdout io.Writer, out *simulation.Outcome) error {
	if o.dot == "" {
		if err := converters.WriteDOT(stdout, out.Graph); err != nil {
			return err
		}
	} else if err := writeFile(o.dot, out.Graph, converters.WriteDOT); err != nil {
		return err
	}
	if o.nodes != "" {
		if err := writeFile(o.nodes, out.Graph, converters.WriteNodes); err != nil {
			return err
		}
	}
	if o.edges != "" {
		if err := writeFile(o.edges, out.Graph, converters.WriteEdges); err != nil {
			return err
		}
	}
	if o.report != "" {
		return writeReport(o.report, simulation.NewReport(out, "", nil))
	}

	return nil
}

// writeFile creates path and renders g into it with write.
func writeFile(path string, g *network.Graph, write func(io.Writer, *network.Graph) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, g); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
