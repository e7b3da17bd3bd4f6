// SPDX-License-Identifier: MIT
package sampling

import (
	"errors"
	"fmt"
	"sort"
)

// ErrZeroWeight indicates a picker whose weights sum to zero.
var ErrZeroWeight = errors.New("sampling: total weight must be positive")

// Picker draws elements with probability proportional to a weight fixed at
// construction time. Negative weights count as zero.
type Picker[T any] struct {
	rnd        *Rand
	items      []T
	cumulative []int // cumulative[i] = sum of weights of items[0..i]
}

// NewPicker snapshots weight(item) for every item.
//
// Complexity: O(n) time and space.
func NewPicker[T any](r *Rand, items []T, weight func(T) int) (*Picker[T], error) {
	p := &Picker[T]{
		rnd:        r,
		items:      append([]T(nil), items...),
		cumulative: make([]int, len(items)),
	}
	total := 0
	for i, it := range items {
		if w := weight(it); w > 0 {
			total += w
		}
		p.cumulative[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: %d items", ErrZeroWeight, len(items))
	}

	return p, nil
}

// Total returns the sum of the snapshotted weights.
func (p *Picker[T]) Total() int { return p.cumulative[len(p.cumulative)-1] }

// Next draws u uniformly in [0,Total) and returns the first item whose
// cumulative weight exceeds u. Zero-weight items are never returned.
//
// Complexity: O(log n).
func (p *Picker[T]) Next() T {
	u := p.rnd.IntN(p.Total())
	i := sort.Search(len(p.cumulative), func(i int) bool { return p.cumulative[i] > u })

	return p.items[i]
}
