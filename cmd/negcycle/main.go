// Package main is the negcycle CLI: a thin external harness around the
// mcmc/oracle/graph core, wiring generators.* graph sources and CLI flags
// to mcmc.Run and serializing the resulting weighted graph.
package main

import "os"

func main() {
	os.Exit(execute())
}
