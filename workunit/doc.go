// SPDX-License-Identifier: MIT
// Package workunit selects the most trusted working unit for a service plan.
//
// A working unit assigns exactly one provider to every service of a plan.
// Selection runs in three stages:
//
//  1. Collect: a breadth-first walk from the customer over trust edges, at
//     most depth hops, records every provider whose Provide(s) reaches the
//     similarity threshold as a candidate for s. Reputation-only providers
//     route trust but are never candidates. The customer itself (hop 0) is
//     collected like any other provider.
//  2. Enumerate: candidates form one ordered list per service and the
//     Enumerator walks their Cartesian product lazily in odometer order,
//     the last service cycling fastest. An empty list makes the product empty.
//  3. Score: the average transitive reputation over every ordered pair of
//     distinct members (source, dest) and every service dest supplies in
//     the unit. Units with fewer than two providers cannot be scored.
//
// FindBest keeps the highest score; ties keep the earliest unit.
package workunit
