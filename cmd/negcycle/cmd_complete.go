package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/negcycle/generators"
)

var (
	completeNodes int
	completeLoops bool
)

// completeCmd builds the complete directed graph on n nodes: every ordered
// pair (i, j), i != j, gets an edge.
var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete directed graph",
	Long:  `complete generates every ordered pair (i, j), i != j, on n nodes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if completeNodes < 1 {
			exitCode = exitArgError
			return fmt.Errorf("complete: -n must be >= 1, got %d", completeNodes)
		}
		n, edges, err := generators.Complete(completeNodes, generators.WithLoops(completeLoops))
		if err != nil {
			exitCode = exitArgError
			return fmt.Errorf("complete: %w", err)
		}
		return runFromEdges(cmd, n, edges)
	},
}

func init() {
	completeCmd.Flags().IntVarP(&completeNodes, "nodes", "n", 10, "number of nodes")
	completeCmd.Flags().BoolVar(&completeLoops, "loops", false, "include self-loops")
}
