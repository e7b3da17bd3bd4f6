// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trustnet/simulation"
	"github.com/katalvlaran/trustnet/workunit"
)

func newReputationCommand(a *app) *cobra.Command {
	var from, to, svc string
	cmd := &cobra.Command{
		Use:   "reputation",
		Short: "Resolve the transitive reputation of one provider for another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.outcome(cmd)
			if err != nil {
				return err
			}
			rep, err := a.runner.Reputation(out, from, to, svc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "reputation(%s -> %s, %s) = %.4f\n", from, to, svc, rep)

			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "trusting provider")
	cmd.Flags().StringVar(&to, "to", "", "trusted provider")
	cmd.Flags().StringVar(&svc, "service", "", "service name, e.g. S03")
	for _, name := range []string{"from", "to", "service"} {
		_ = cmd.MarkFlagRequired(name)
	}
	addSourceFlags(cmd, a)

	return cmd
}

func newUnitCommand(a *app) *cobra.Command {
	var (
		customer string
		plan     []string
		report   string
	)
	cmd := &cobra.Command{
		Use:   "unit",
		Short: "Select the best working unit for a customer and a service plan",
		Long: "unit collects the providers within --depth trust hops of the customer,\n" +
			"enumerates every assignment of them to the planned services and prints\n" +
			"the assignment with the highest overall reputation.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.outcome(cmd)
			if err != nil {
				return err
			}
			sel, found, err := a.runner.SelectUnit(cmd.Context(), out, customer, plan)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !found {
				fmt.Fprintf(w, "no working unit for %s over %s (%d enumerated)\n",
					customer, strings.Join(plan, ","), sel.Enumerated)
			} else {
				fmt.Fprintf(w, "%s score=%.4f enumerated=%d\n", sel.Unit, sel.Score, sel.Enumerated)
			}
			if report == "" {
				return nil
			}
			var best *workunit.Selection
			if found {
				best = &sel
			}

			return writeReport(report, simulation.NewReport(out, customer, best))
		},
	}
	cmd.Flags().StringVar(&customer, "customer", "", "provider requesting the plan")
	cmd.Flags().StringSliceVar(&plan, "plan", nil, "comma-separated services, e.g. S01,S04")
	cmd.Flags().StringVar(&report, "report", "", "write a YAML run report to this file")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("plan")
	addSourceFlags(cmd, a)

	return cmd
}
