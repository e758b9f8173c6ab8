package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/negcycle/generators"
)

var (
	gnpNodes  int
	gnpDegree float64
)

// gnpCmd builds an Erdős–Rényi G(n, p) graph, with p derived from the
// requested average out-degree d via p = d/(n-1), so gnp and rhg share the
// same -d knob. dsf has no -d flag.
var gnpCmd = &cobra.Command{
	Use:   "gnp",
	Short: "Erdos-Renyi random graph G(n, p)",
	Long: `gnp generates a directed Erdos-Renyi graph on n nodes, including each
of the n*(n-1) ordered pairs independently with probability p = d/(n-1),
where d is the requested average out-degree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if gnpNodes < 1 {
			exitCode = exitArgError
			return fmt.Errorf("gnp: -n must be >= 1, got %d", gnpNodes)
		}
		p := 0.0
		if gnpNodes > 1 {
			p = gnpDegree / float64(gnpNodes-1)
		}
		seed := resolveSeed(cmd)
		n, edges, err := generators.GNP(gnpNodes, p, generators.WithSeed(seed))
		if err != nil {
			exitCode = exitArgError
			return fmt.Errorf("gnp: %w", err)
		}
		return runFromEdges(cmd, n, edges)
	},
}

func init() {
	gnpCmd.Flags().IntVarP(&gnpNodes, "nodes", "n", 10, "number of nodes")
	gnpCmd.Flags().Float64VarP(&gnpDegree, "degree", "d", 2, "target average out-degree")
}
