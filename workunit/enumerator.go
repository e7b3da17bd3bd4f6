// SPDX-License-Identifier: MIT
package workunit

import (
	"github.com/katalvlaran/trustnet/network"
	"github.com/katalvlaran/trustnet/service"
)

// Enumerator yields every combination of one candidate per service exactly
// once, in odometer order. It is finite and cannot be restarted.
//
//	e := c.Enumerate()
//	for e.Next() {
//		use(e.Unit())
//	}
//	if err := e.Err(); err != nil { ... }
type Enumerator struct {
	plan  []service.Service
	lists [][]*network.Provider
	idx   []int
	unit  *network.WorkingUnit
	err   error
	done  bool
	count int
}

func newEnumerator(plan []service.Service, lists [][]*network.Provider) *Enumerator {
	e := &Enumerator{
		plan:  plan,
		lists: make([][]*network.Provider, len(lists)),
		idx:   make([]int, len(lists)),
	}
	for i, l := range lists {
		e.lists[i] = append([]*network.Provider(nil), l...)
		if len(l) == 0 {
			e.done = true
		}
	}
	if len(lists) == 0 {
		e.done = true
	}

	return e
}

// Next advances to the next combination. It returns false once the product
// is exhausted or a unit could not be built (see Err).
func (e *Enumerator) Next() bool {
	if e.done {
		e.unit = nil
		return false
	}

	u := network.NewWorkingUnit()
	for i, s := range e.plan {
		if err := u.Add(e.lists[i][e.idx[i]], s); err != nil {
			e.err, e.done, e.unit = err, true, nil
			return false
		}
	}
	e.unit = u
	e.count++
	e.advance()

	return true
}

// advance moves the odometer one step; the last position turns fastest.
func (e *Enumerator) advance() {
	for i := len(e.idx) - 1; i >= 0; i-- {
		e.idx[i]++
		if e.idx[i] < len(e.lists[i]) {
			return
		}
		e.idx[i] = 0
	}
	e.done = true
}

// Unit returns the combination produced by the last successful Next.
func (e *Enumerator) Unit() *network.WorkingUnit { return e.unit }

// Count returns how many units have been produced so far.
func (e *Enumerator) Count() int { return e.count }

// Err returns the first error that stopped the enumeration, e.g. a candidate
// flagged reputation-only after collection.
func (e *Enumerator) Err() error { return e.err }
