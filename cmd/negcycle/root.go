package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/negcycle/mcmc"
)

const (
	exitSuccess       = 0
	exitVerifierError = 1
	exitArgError      = 2
)

// exitCode is set by a RunE before returning an error, so main can pick the
// right process exit status: 0 success, 2 argument error, 1 verifier
// failure under --check. cobra itself has no notion of exit codes beyond
// nil/non-nil error.
var exitCode = exitSuccess

var (
	flagWMin   float64
	flagWMax   float64
	flagRounds float64
	flagType   string
	flagSeed   int64
	flagInit   string
	flagAlgo   string
	flagSCC    bool
	flagCheck  bool
	flagOutput string
)

var rootCmd = &cobra.Command{
	Use:   "negcycle",
	Short: "Generate benchmark graphs with random negative-cycle-free edge weightings",
	Long: `negcycle runs an MCMC proposal chain over a directed graph's edge
weights, converging toward a distribution uniform over weightings that admit
no negative-weight cycle. Pick a graph source as a subcommand (gnp, rhg,
dsf, complete, cycle, file); the global flags below control weight bounds,
the acceptance oracle, initialization policy, and output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Float64VarP(&flagWMin, "wmin", "w", -1, "minimum edge weight")
	rootCmd.PersistentFlags().Float64VarP(&flagWMax, "wmax", "W", 1, "maximum edge weight")
	rootCmd.PersistentFlags().Float64VarP(&flagRounds, "rounds", "r", 1, "proposal rounds per edge (negative = single sweep-to-minimum pass)")
	rootCmd.PersistentFlags().StringVarP(&flagType, "type", "t", "f64", "weight type: i32, i64, f32, f64")
	rootCmd.PersistentFlags().Int64VarP(&flagSeed, "seed", "s", 0, "deterministic RNG seed")
	rootCmd.PersistentFlags().StringVarP(&flagInit, "init", "i", "m", "initial weighting: m (max), z (zero), u (uniform)")
	rootCmd.PersistentFlags().StringVarP(&flagAlgo, "algo", "a", "bd", "acceptance oracle: bd (bidirectional), d (unidirectional), bf (Bellman-Ford)")
	rootCmd.PersistentFlags().BoolVar(&flagSCC, "scc", false, "restrict to the largest strongly connected component before running")
	rootCmd.PersistentFlags().BoolVar(&flagCheck, "check", false, "verify acyclic-in-negatives before and after the run")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output path (default: standard error)")

	rootCmd.AddCommand(gnpCmd, rhgCmd, dsfCmd, completeCmd, cycleCmd, fileCmd)
}

func execute() int {
	exitCode = exitSuccess
	if err := rootCmd.Execute(); err != nil {
		if exitCode == exitSuccess {
			exitCode = exitArgError
		}
		fmt.Fprintf(os.Stderr, "negcycle: %v\n", err)
	}
	return exitCode
}

// initPolicyFor maps the CLI's single-letter init codes to mcmc.InitPolicy.
func initPolicyFor(code string) (mcmc.InitPolicy, error) {
	switch code {
	case "m":
		return mcmc.Max, nil
	case "z":
		return mcmc.Zero, nil
	case "u":
		return mcmc.Uniform, nil
	default:
		return 0, fmt.Errorf("unknown -i value %q, want m, z, or u", code)
	}
}

// validAlgo checks -a without instantiating an oracle, since the concrete
// oracle.Oracle[T] can only be built once T is known (see run.go).
func validAlgo(code string) error {
	switch code {
	case "d", "bd", "bf":
		return nil
	default:
		return fmt.Errorf("unknown -a value %q, want d, bd, or bf", code)
	}
}
