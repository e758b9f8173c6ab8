package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/negcycle/generators"
)

var cycleNodes int

// cycleCmd builds the n-node directed ring 0->1->...->(n-1)->0, the
// minimal fixture for exercising the negative-cycle invariant directly.
var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Directed ring graph",
	Long:  `cycle generates the n-node ring 0->1->...->(n-1)->0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, edges, err := generators.Cycle(cycleNodes)
		if err != nil {
			exitCode = exitArgError
			return fmt.Errorf("cycle: %w", err)
		}
		return runFromEdges(cmd, n, edges)
	},
}

func init() {
	cycleCmd.Flags().IntVarP(&cycleNodes, "nodes", "n", 3, "number of nodes")
}
