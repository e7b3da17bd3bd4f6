// SPDX-License-Identifier: MIT
package simulation

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trustnet/workunit"
)

// Report summarises one run.
type Report struct {
	RunID          string      `yaml:"run_id"`
	Seed           uint64      `yaml:"seed"`
	Attempts       int         `yaml:"attempts"`
	Providers      int         `yaml:"providers"`
	ReputationOnly int         `yaml:"reputation_only"`
	Edges          int         `yaml:"edges"`
	Services       int         `yaml:"services"`
	Unit           *UnitReport `yaml:"unit,omitempty"`
}

// UnitReport describes a selected working unit.
type UnitReport struct {
	Customer    string       `yaml:"customer"`
	Score       float64      `yaml:"score"`
	Enumerated  int          `yaml:"enumerated"`
	Assignments []Assignment `yaml:"assignments"`
}

// Assignment is one service → provider pair of a unit.
type Assignment struct {
	Service  string `yaml:"service"`
	Provider string `yaml:"provider"`
}

// NewReport summarises out. sel may be nil when no unit was selected.
func NewReport(out *Outcome, customer string, sel *workunit.Selection) Report {
	rep := Report{
		RunID:     uuid.NewString(),
		Seed:      out.Seed,
		Attempts:  out.Attempts,
		Providers: out.Graph.ProviderCount(),
		Edges:     out.Graph.EdgeCount(),
		Services:  len(out.Catalog),
	}
	for _, p := range out.Graph.Providers() {
		if p.ReputationOnly() {
			rep.ReputationOnly++
		}
	}
	if sel != nil && sel.Unit != nil {
		ur := &UnitReport{Customer: customer, Score: sel.Score, Enumerated: sel.Enumerated}
		for _, s := range sel.Unit.Services() {
			p, _ := sel.Unit.Supplier(s)
			ur.Assignments = append(ur.Assignments, Assignment{Service: s.Name(), Provider: p.Name()})
		}
		rep.Unit = ur
	}

	return rep
}

// WriteYAML encodes the report as a YAML document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("simulation: encode report: %w", err)
	}

	return enc.Close()
}
