// Package negcycle generates benchmark graphs whose edge weights are drawn
// uniformly at random from among all weightings that admit no
// negative-weight cycle.
//
// A fixed topology comes from generators/ (Erdos-Renyi, directed
// scale-free, random hyperbolic, complete, cycle, or a plain edge-list
// file); mcmc.Run then walks a Metropolis-style proposal chain over its
// edge weights, using an oracle/ implementation (unidirectional Dijkstra,
// bidirectional Dijkstra, or Bellman-Ford) to reject any single-edge
// change that would introduce a negative cycle, and graph/ to hold the
// CSR adjacency and per-node potential the oracles read and repair.
//
// Subpackages:
//
//	weight/         — the Numeric type-set constraint and generic
//	                  arithmetic every other package is parameterized over
//	graph/          — CSR-backed directed multigraph and its potential
//	                  vector
//	oracle/         — feasibility oracles the driver queries before
//	                  committing a lowered edge weight
//	mcmc/           — the proposal/accept/reject driver and its options
//	generators/     — topology sources external to the sampling core
//	internal/scc    — largest strongly connected component extraction
//	internal/verify — whole-graph negative-cycle detection for --check
//	cmd/negcycle    — the CLI binary
//
//	go get github.com/katalvlaran/negcycle
package negcycle
