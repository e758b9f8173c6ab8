// Package oracle implements the three interchangeable shortest-path
// feasibility oracles the MCMC driver consults on every lowering proposal:
// "would setting edge e=(u,v) to weight w' create a negative cycle, given
// the current potential h?"
//
// All three share the Oracle interface (Query then, on acceptance, Repair)
// and operate on reduced costs w(x,y)+h(x)-h(y) derived from the caller's
// current graph.Potential — never on raw edge weights, except BellmanFord
// which is the un-reduced reference implementation.
//
// Scratch state (distance arrays, heaps, visited sets) is allocated once
// per Oracle instance, sized to the graph's node count, and reused across
// queries: resetting it touches only the nodes visited by the previous
// query, not the whole array, a touched-list technique that avoids an
// O(n) reset in the hot loop.
package oracle
