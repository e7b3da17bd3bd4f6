// SPDX-License-Identifier: MIT
package sampling

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrEmpty indicates a draw from an empty collection.
	ErrEmpty = errors.New("sampling: empty collection")

	// ErrSubsetTooLarge indicates more distinct elements were requested than exist.
	ErrSubsetTooLarge = errors.New("sampling: subset larger than collection")

	// ErrTooFewElements indicates a pair was requested from fewer than two elements.
	ErrTooFewElements = errors.New("sampling: need at least two elements")

	// ErrBadBound indicates a non-positive upper bound for a bounded draw.
	ErrBadBound = errors.New("sampling: bound must be >= 1")
)

// Distribution constants of the trust level and service count draws.
const (
	// DefaultSeed replaces a zero seed so that New(0) is still reproducible.
	DefaultSeed uint64 = 1

	trustAlpha = 19
	trustBeta  = 7

	// serviceContinue is the probability of adding one more service.
	serviceContinue = 0.75

	// pcgStream is the fixed PCG increment; only the state varies with the seed.
	pcgStream uint64 = 0xda3e39cb94b95bdb
)

// source adapts a PCG generator to the Uint64/Seed(uint64) source shape
// expected by gonum distributions.
type source struct {
	pcg *rand.PCG
}

func (s *source) Uint64() uint64 { return s.pcg.Uint64() }

func (s *source) Seed(seed uint64) { s.pcg.Seed(seed, pcgStream) }

// Rand is a seedable random state threaded through generator, sampler and picker.
type Rand struct {
	src  *source
	r    *rand.Rand
	beta distuv.Beta
}

// New returns a deterministic Rand. Policy: seed==0 ⇒ DefaultSeed.
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	src := &source{pcg: rand.NewPCG(seed, pcgStream)}

	return &Rand{
		src:  src,
		r:    rand.New(src),
		beta: distuv.Beta{Alpha: trustAlpha, Beta: trustBeta, Src: src},
	}
}

// deriveSeed mixes a parent draw and a stream identifier (SplitMix64 finalizer).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// Derive creates an independent child stream. It advances r once, so two
// calls with the same stream id still yield different children.
func (r *Rand) Derive(stream uint64) *Rand {
	return New(deriveSeed(r.r.Uint64(), stream))
}

// Uint64 returns a uniformly distributed 64-bit value.
func (r *Rand) Uint64() uint64 { return r.r.Uint64() }

// Float64 returns a uniform value in [0,1).
func (r *Rand) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform value in [0,n). It panics if n <= 0.
func (r *Rand) IntN(n int) int { return r.r.IntN(n) }

// TrustLevel draws beta(19,7) mapped onto [-1,1]; the mean is about +0.46.
func (r *Rand) TrustLevel() float64 {
	v := r.beta.Rand()*2 - 1
	// Guard the closed interval against rounding at the edges.
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}

	return v
}

// ServiceCount draws 1 + the number of consecutive successes of a 0.75 coin.
// Draws above limit are discarded and resampled.
func (r *Rand) ServiceCount(limit int) (int, error) {
	if limit < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadBound, limit)
	}
	for {
		n := 1
		for r.r.Float64() < serviceContinue {
			n++
		}
		if n <= limit {
			return n, nil
		}
	}
}

// Element draws one element of items uniformly.
func Element[T any](r *Rand, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmpty
	}

	return items[r.IntN(len(items))], nil
}

// Subset draws k distinct positions of items uniformly and returns the
// elements in their original order. Repeated draws of a position are redrawn.
func Subset[T any](r *Rand, items []T, k int) ([]T, error) {
	if k > len(items) {
		return nil, fmt.Errorf("%w: requested %d of %d", ErrSubsetTooLarge, k, len(items))
	}
	if k <= 0 {
		return []T{}, nil
	}
	picked := make([]bool, len(items))
	for got := 0; got < k; {
		i := r.IntN(len(items))
		if picked[i] {
			continue
		}
		picked[i] = true
		got++
	}
	out := make([]T, 0, k)
	for i, ok := range picked {
		if ok {
			out = append(out, items[i])
		}
	}

	return out, nil
}

// Pair draws two elements at distinct positions; the second is redrawn until
// it differs from the first.
func Pair[T any](r *Rand, items []T) (T, T, error) {
	var zero T
	if len(items) < 2 {
		return zero, zero, fmt.Errorf("%w: got %d", ErrTooFewElements, len(items))
	}
	i := r.IntN(len(items))
	j := r.IntN(len(items))
	for j == i {
		j = r.IntN(len(items))
	}

	return items[i], items[j], nil
}
