// Package mcmc implements the proposal/accept/reject driver that walks a
// graph's edge weights through a Markov chain whose stationary distribution
// is uniform over all weightings free of negative cycles.
//
// Run owns the whole loop: it applies an initialization policy to seed a
// feasible starting weighting and potential, then repeatedly samples an
// edge and a candidate weight, consults a shortest-path feasibility oracle
// only when the candidate would strictly lower the edge's current weight,
// and commits or discards the proposal accordingly. Configuration is a
// functional-options record.
package mcmc
