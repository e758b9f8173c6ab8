package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/negcycle/generators"
)

var (
	dsfNodes    int
	dsfAlpha    float64
	dsfBeta     float64
	dsfDeltaOut float64
	dsfDeltaIn  float64
)

// dsfCmd builds a directed scale-free graph by preferential-attachment
// growth. alpha, beta, and the implicit gamma = 1 - alpha - beta pick which
// of three growth moves runs at each step; deltaOut/deltaIn bias the
// attachment weights away from zero-degree nodes.
var dsfCmd = &cobra.Command{
	Use:   "dsf",
	Short: "Directed scale-free graph",
	Long: `dsf grows a directed graph to n nodes via preferential attachment,
mixing three moves (new node attaching out, new edge between existing
nodes, new node attaching in) with probabilities alpha, beta, and
1-alpha-beta.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dsfNodes < 1 {
			exitCode = exitArgError
			return fmt.Errorf("dsf: -n must be >= 1, got %d", dsfNodes)
		}
		seed := resolveSeed(cmd)
		n, edges, err := generators.DSF(dsfNodes, dsfAlpha, dsfBeta, dsfDeltaOut, dsfDeltaIn, generators.WithSeed(seed))
		if err != nil {
			exitCode = exitArgError
			return fmt.Errorf("dsf: %w", err)
		}
		return runFromEdges(cmd, n, edges)
	},
}

func init() {
	dsfCmd.Flags().IntVarP(&dsfNodes, "nodes", "n", 10, "number of nodes")
	dsfCmd.Flags().Float64Var(&dsfAlpha, "alpha", 0.41, "probability of adding a node attaching out to an existing one")
	dsfCmd.Flags().Float64Var(&dsfBeta, "beta", 0.54, "probability of adding an edge between two existing nodes")
	dsfCmd.Flags().Float64Var(&dsfDeltaOut, "delta-out", 1, "out-degree attachment bias")
	dsfCmd.Flags().Float64Var(&dsfDeltaIn, "delta-in", 1, "in-degree attachment bias")
}
