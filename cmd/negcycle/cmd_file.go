package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/negcycle/generators"
)

var filePath string

// fileCmd loads a topology from a plain-text edge list, "tail head" per
// line, blank lines and #-prefixed comments ignored.
var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Load a topology from an edge-list file",
	Long:  `file reads "tail head" pairs, one per line, and builds their graph.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if filePath == "" {
			exitCode = exitArgError
			return fmt.Errorf("file: -p is required")
		}
		f, err := os.Open(filePath)
		if err != nil {
			exitCode = exitArgError
			return fmt.Errorf("file: %w", err)
		}
		defer f.Close()

		n, edges, err := generators.FromFile(f)
		if err != nil {
			exitCode = exitArgError
			return fmt.Errorf("file: %w", err)
		}
		return runFromEdges(cmd, n, edges)
	},
}

func init() {
	fileCmd.Flags().StringVarP(&filePath, "path", "p", "", "path to an edge-list file")
}
