// SPDX-License-Identifier: MIT
// Package sampling holds the seedable random-draw utilities shared by the
// graph builder: uniform element/subset/pair draws, the skewed trust-level
// distribution, the geometric-like service count, and a proportional picker.
//
// Determinism:
//   - A *Rand is an explicit, seedable state object; nothing reads global state.
//   - Same seed ⇒ identical draw sequence on every platform.
//   - Derive(stream) produces an independent child stream (SplitMix64 mix of
//     one parent draw and the stream id), for parallel trials.
//
// Concurrency:
//   - *Rand is NOT goroutine-safe. Give every goroutine its own Derive'd stream.
//
// Rejection policy:
//   - ServiceCount resamples out-of-range draws instead of clamping them.
//   - Subset and Pair redraw duplicates until enough distinct elements exist.
package sampling
