// SPDX-License-Identifier: MIT
package workunit

import (
	"context"
	"fmt"

	"github.com/katalvlaran/trustnet/network"
	"github.com/katalvlaran/trustnet/service"
	"github.com/katalvlaran/trustnet/trust"
)

// Score returns the average reputation(source, dest, s) over every ordered
// pair of distinct providers of u and every service s that dest supplies in u.
func Score(r *trust.Resolver, u *network.WorkingUnit) (float64, error) {
	if r == nil {
		return 0, ErrNilResolver
	}
	providers := u.Providers()
	if len(providers) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewProviders, len(providers))
	}

	var sum float64
	n := 0
	for _, src := range providers {
		for _, dst := range providers {
			if src == dst {
				continue
			}
			for _, s := range u.ServicesOf(dst) {
				rep, err := r.Reputation(src.Name(), dst.Name(), s)
				if err != nil {
					return 0, err
				}
				sum += rep
				n++
			}
		}
	}

	return sum / float64(n), nil
}

// Selection is the outcome of FindBest.
type Selection struct {
	Unit  *network.WorkingUnit
	Score float64

	// Enumerated counts every unit produced; Scored those with two or more providers.
	Enumerated int
	Scored     int
}

// FindBest collects candidates around customer, enumerates every working
// unit for plan and returns the best scored one. found is false when no unit
// with at least two providers exists.
//
// Implementation:
//   - Stage 1: Collect (configuration errors surface here).
//   - Stage 2: Enumerate lazily; units with a single provider are skipped.
//   - Stage 3: The first scorable unit seeds the best score, so an all-negative
//     plan still has a winner; later units replace it only when strictly better.
func FindBest(ctx context.Context, r *trust.Resolver, customer string, plan []service.Service, depth int, minSimilarity float64) (sel Selection, found bool, err error) {
	if r == nil {
		return Selection{}, false, ErrNilResolver
	}
	c, err := Collect(ctx, r.Graph(), customer, plan, depth, minSimilarity)
	if err != nil {
		return Selection{}, false, err
	}

	e := c.Enumerate()
	for e.Next() {
		if err = ctx.Err(); err != nil {
			return Selection{}, false, err
		}
		u := e.Unit()
		if len(u.Providers()) < 2 {
			continue
		}
		score, err := Score(r, u)
		if err != nil {
			return Selection{}, false, err
		}
		sel.Scored++
		if !found || score > sel.Score {
			sel.Unit, sel.Score, found = u, score, true
		}
	}
	sel.Enumerated = e.Count()
	if err = e.Err(); err != nil {
		return Selection{}, false, err
	}

	return sel, found, nil
}
