// SPDX-License-Identifier: MIT
// Package builder provides helper functions and types
// for configuring provider naming schemes.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ProviderIDFn returns the two-digit provider name, e.g. 0→"P00", 7→"P07", 123→"P123".
// Panics if idx < 0.
func ProviderIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ProviderIDFn: idx must be ≥ 0, got %d", idx))
	}

	return fmt.Sprintf(ProviderNamePattern, idx)
}

// PatternIDFn returns an IDFn that renders idx through a fmt pattern with a
// single integer verb, e.g. PatternIDFn("node-%03d")(5) = "node-005".
// Panics if pattern is empty.
func PatternIDFn(pattern string) IDFn {
	if pattern == "" {
		panic("PatternIDFn: empty pattern")
	}

	return func(idx int) string { return fmt.Sprintf(pattern, idx) }
}
