// Package trustnet simulates trust networks between service providers.
//
// Providers offer services drawn from a catalog arranged as a similarity
// tree. They trust each other per service with a level in [-1, 1], and those
// trust edges form a directed multigraph grown by the Eppstein–Wang
// power-law process. On top of that graph trustnet resolves transitive
// reputation along the most trusted path and picks, for a customer and a
// service plan, the working unit of nearby providers with the highest
// overall reputation.
//
// Packages:
//
//	core/          thread-safe multigraph with deterministic vertex and edge order
//	service/       service catalog, tree distance and similarity
//	sampling/      seeded random streams and the proportional picker
//	network/       providers, trust labels, the trust graph and working units
//	builder/       power-law graph generator
//	prim_kruskal/  spanning-forest count used as the connectivity check
//	bfs/           depth-bounded breadth-first traversal
//	dijkstra/      single-source shortest paths with pluggable edge costs
//	trust/         transitive reputation resolver
//	workunit/      candidate collection, enumeration and scoring
//	converters/    node/edge CSV and DOT import and export
//	config/        YAML, environment and flag configuration
//	simulation/    generation with retries, metrics and run reports
//	cmd/trustnet/  command-line front end
//
// Quick ASCII example:
//
//	  P00 ──S03 0.8──▶ P01 ──S03 0.5──▶ P02
//
// gives P00 a reputation of 0.5 for P02 on S03: the weakest hop of the
// chosen path bounds the whole chain.
//
//	go install github.com/katalvlaran/trustnet/cmd/trustnet@latest
package trustnet
