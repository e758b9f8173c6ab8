package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/negcycle/graph"
	"github.com/katalvlaran/negcycle/internal/scc"
	"github.com/katalvlaran/negcycle/internal/verify"
	"github.com/katalvlaran/negcycle/mcmc"
	"github.com/katalvlaran/negcycle/oracle"
	"github.com/katalvlaran/negcycle/weight"
)

// castBound converts a CLI-parsed float64 bound into T. The switch is
// resolved once per T instantiation (mirroring weight.NewDomain's own type
// switch); every branch must type-check for the whole Numeric type set, so
// each conversion goes through the branch's own concrete type first.
func castBound[T weight.Numeric](f float64) T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return T(int32(f))
	case int64:
		return T(int64(f))
	case float32:
		return T(float32(f))
	default:
		return T(f)
	}
}

// runFromEdges is the single entry point every subcommand's RunE funnels
// into once it has produced (n, edges): it applies --scc, picks the T
// instantiation from -t, and runs the MCMC chain.
func runFromEdges(cmd *cobra.Command, n int, edges []graph.Edge) error {
	if n == 0 || len(edges) == 0 {
		exitCode = exitArgError
		return errors.New("empty graph")
	}
	if err := validAlgo(flagAlgo); err != nil {
		exitCode = exitArgError
		return err
	}
	initPolicy, err := initPolicyFor(flagInit)
	if err != nil {
		exitCode = exitArgError
		return err
	}
	if flagWMax < flagWMin {
		exitCode = exitArgError
		return fmt.Errorf("wmax=%g < wmin=%g", flagWMax, flagWMin)
	}

	if flagSCC {
		n, edges, err = restrictToLargestSCC(n, edges)
		if err != nil {
			exitCode = exitArgError
			return err
		}
	}

	seed := resolveSeed(cmd)

	switch flagType {
	case "i32":
		return runTyped[int32](n, edges, initPolicy, seed)
	case "i64":
		return runTyped[int64](n, edges, initPolicy, seed)
	case "f32":
		return runTyped[float32](n, edges, initPolicy, seed)
	case "f64":
		return runTyped[float64](n, edges, initPolicy, seed)
	default:
		exitCode = exitArgError
		return fmt.Errorf("unknown -t value %q, want i32, i64, f32, or f64", flagType)
	}
}

// resolvedSeed caches the outcome of the first resolveSeed call: a
// generator subcommand resolves it once for its own RNG, and runFromEdges
// resolves it again for the driver's RNG, and both must land on the same
// value when -s was never given, or the printed seed would not actually
// reproduce the run.
var resolvedSeed *int64

// resolveSeed reads -s if the caller set it explicitly; otherwise it draws
// a fresh seed from the clock on first call and reuses it for the rest of
// the process's lifetime.
func resolveSeed(cmd *cobra.Command) int64 {
	if cmd.Flags().Changed("seed") {
		return flagSeed
	}
	if resolvedSeed == nil {
		s := time.Now().UnixNano()
		resolvedSeed = &s
	}
	return *resolvedSeed
}

// restrictToLargestSCC computes the largest SCC over the topology alone
// (edge weights are irrelevant to connectivity), then rebuilds the edge
// list against the kept, renumbered node set.
func restrictToLargestSCC(n int, edges []graph.Edge) (int, []graph.Edge, error) {
	g, err := graph.New[int64](n, edges)
	if err != nil {
		return 0, nil, err
	}
	keep := scc.Largest(g)
	newN, newEdges := scc.Restrict[int64](g, keep)
	return newN, newEdges, nil
}

func runTyped[T weight.Numeric](n int, edges []graph.Edge, initPolicy mcmc.InitPolicy, seed int64) error {
	g, err := graph.New[T](n, edges)
	if err != nil {
		exitCode = exitArgError
		return fmt.Errorf("building graph: %w", err)
	}

	var o oracle.Oracle[T]
	switch flagAlgo {
	case "d":
		o = oracle.NewDijkstra[T](n)
	case "bf":
		o = oracle.NewBellmanFord[T](n)
	default:
		o = oracle.NewBiDijkstra[T](n)
	}

	opts := []mcmc.Option[T]{
		mcmc.WithBounds[T](castBound[T](flagWMin), castBound[T](flagWMax)),
		mcmc.WithSeed[T](seed),
		mcmc.WithRoundsPerEdge[T](flagRounds),
		mcmc.WithInit[T](initPolicy),
		mcmc.WithOracle[T](o),
		mcmc.WithVerify[T](flagCheck),
	}

	_, stats, err := mcmc.Run[T](g, opts...)
	if err != nil {
		return handleRunError(err, g, seed, stats)
	}

	return writeOutput(g)
}

// handleRunError classifies a failure from mcmc.Run into the CLI's exit
// taxonomy: configuration errors exit 2; an invariant violation caught by
// --check's post-run verifier exits 1 with a diagnostic dump naming the
// seed, oracle, proposal count, and one offending edge from the negative
// cycle the verifier found.
func handleRunError[T weight.Numeric](err error, g *graph.Graph[T], seed int64, stats mcmc.Stats[T]) error {
	if errors.Is(err, mcmc.ErrInfeasibleStart) || errors.Is(err, mcmc.ErrInfeasibleResult) {
		exitCode = exitVerifierError
		cycle := verify.FindNegativeCycle[T](g)
		msg := fmt.Sprintf("invariant violation: %v (seed=%d oracle=%s proposals=%d)",
			err, seed, flagAlgo, stats.Proposals)
		if len(cycle) > 0 {
			e := int(cycle[0])
			msg += fmt.Sprintf(" offending edge=%d (%d->%d w=%v)", e, g.Tail(e), g.Head(e), g.Weight(e))
		}
		return errors.New(msg)
	}
	exitCode = exitArgError
	return err
}

func writeOutput[T weight.Numeric](g *graph.Graph[T]) error {
	var w io.Writer = os.Stderr
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			exitCode = exitArgError
			return fmt.Errorf("opening output: %w", err)
		}
		defer f.Close()
		w = f
	}

	buf := bufio.NewWriter(w)
	for e := 0; e < g.M(); e++ {
		if _, err := fmt.Fprintf(buf, "%d %d %s\n", g.Tail(e), g.Head(e), formatWeight(g.Weight(e))); err != nil {
			exitCode = exitArgError
			return err
		}
	}
	if err := buf.Flush(); err != nil {
		exitCode = exitArgError
		return err
	}
	return nil
}

// formatWeight renders a weight as decimal for integers, or the shortest
// round-trippable text for floats.
func formatWeight[T weight.Numeric](v T) string {
	switch x := any(v).(type) {
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
