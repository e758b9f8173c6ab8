// Package graph implements the immutable directed multigraph the MCMC core
// operates on, plus the node potential that keeps reduced costs
// nonnegative.
//
// A Graph[T] is built once from a node count and an edge list via New, then
// treated as topology-frozen for the remainder of its lifetime: only edge
// weights and the accompanying Potential mutate afterward, and both mutate
// exclusively through the methods documented below (SetWeight, Potential.Set,
// Potential.Add)
// so that every mutation site is auditable.
//
// Two CSR-style adjacency views are built alongside the edge list —
// outgoing edges by tail, incoming edges by head — giving O(deg) neighbor
// iteration for both the forward and backward searches the oracle package
// needs. There is no locking: a Graph belongs to exactly one
// single-threaded MCMC run for its whole lifetime.
package graph
