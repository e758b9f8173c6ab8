package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/negcycle/generators"
)

var (
	rhgNodes  int
	rhgAlpha  float64
	rhgRadius float64
	rhgDegree float64
	rhgProb   float64
)

// rhgCmd builds a random hyperbolic graph: either --radius (disk radius) or
// -d (target average degree, converted to a radius internally) must be
// given, never both.
var rhgCmd = &cobra.Command{
	Use:   "rhg",
	Short: "Random hyperbolic graph",
	Long: `rhg samples n points on a hyperbolic disk, with radial density set by
alpha, and connects pairs whose hyperbolic distance falls under the disk
radius. Give either --radius to fix the radius directly or -d to request a
target average degree and let rhg solve for the radius that achieves it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if rhgNodes < 1 {
			exitCode = exitArgError
			return fmt.Errorf("rhg: -n must be >= 1, got %d", rhgNodes)
		}
		var radius, avgDeg *float64
		if cmd.Flags().Changed("radius") {
			radius = &rhgRadius
		}
		if cmd.Flags().Changed("degree") {
			avgDeg = &rhgDegree
		}
		seed := resolveSeed(cmd)
		n, edges, err := generators.RHG(rhgNodes, rhgAlpha, radius, avgDeg, rhgProb, generators.WithSeed(seed))
		if err != nil {
			exitCode = exitArgError
			return fmt.Errorf("rhg: %w", err)
		}
		return runFromEdges(cmd, n, edges)
	},
}

func init() {
	rhgCmd.Flags().IntVarP(&rhgNodes, "nodes", "n", 10, "number of nodes")
	rhgCmd.Flags().Float64Var(&rhgAlpha, "alpha", 0.75, "radial density parameter of the hyperbolic disk")
	rhgCmd.Flags().Float64Var(&rhgRadius, "radius", 0, "disk radius (mutually exclusive with -d)")
	rhgCmd.Flags().Float64VarP(&rhgDegree, "degree", "d", 0, "target average degree (mutually exclusive with --radius)")
	rhgCmd.Flags().Float64Var(&rhgProb, "prob", 0, "probability an edge in range is drawn in both directions")
}
