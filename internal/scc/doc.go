// Package scc extracts the largest strongly connected component of a
// directed graph, backing the CLI's --scc restriction: a generator's
// output is replaced with its largest SCC before the graph and MCMC
// packages ever see it, so neither has to know this step ran.
package scc
