// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by the trust-graph generator.
package builder

// MethodPowerLaw is the canonical name for the PowerLaw constructor,
// used to prefix errors with context.
const MethodPowerLaw = "PowerLaw"

// ProviderNamePattern is the default provider naming scheme ("P00", "P01", ...).
const ProviderNamePattern = "P%02d"

// minProviders is the smallest vertex count that admits a distinct endpoint pair.
const minProviders = 2

// minConnections is the smallest skeleton edge count that lets rewiring terminate.
const minConnections = 1
