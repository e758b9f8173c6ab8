// Package verify implements the independent, potential-free negative-cycle
// check used by --check and by mcmc.WithVerify: a classic Bellman-Ford run
// from a virtual zero-weight source, detecting a cycle via an SPFA
// enqueue-count bound. It never trusts a Potential; it exists specifically
// to catch bugs in the oracles that maintain one.
package verify
