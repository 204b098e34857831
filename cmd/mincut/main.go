// Command mincut estimates the minimum cut of an undirected graph with
// Karger's contraction algorithm, computes the exact reference cut, and
// prints a side-by-side comparison table.
//
// Input is a plain-text edge list (one "u,v" / "u v" / "(u, v)" pair per
// line) or a generated G(n,p) random graph.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tessarin/mincut/builder"
	"github.com/tessarin/mincut/contract"
	"github.com/tessarin/mincut/convert"
	"github.com/tessarin/mincut/core"
	"github.com/tessarin/mincut/evaluate"
	"github.com/tessarin/mincut/exact"
)

var (
	inputPath   string
	randomNodes int
	randomProb  float64
	trials      int
	seed        int64
	workers     int
	showSteps   bool
	verbose     bool
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Trap Ctrl+C and cancel outstanding trials.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	rootCmd := &cobra.Command{
		Use:          "mincut",
		Short:        "Estimate a graph's minimum cut by randomized edge contraction and score it against the exact cut.",
		RunE:         newRunAction(ctx),
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to an edge-list file (one integer pair per line)")
	rootCmd.Flags().IntVarP(&randomNodes, "random", "n", 0, "generate a random G(n,p) graph with n nodes instead of reading a file")
	rootCmd.Flags().Float64VarP(&randomProb, "prob", "p", 0.3, "edge probability for the generated random graph")
	rootCmd.Flags().IntVarP(&trials, "trials", "t", 20, "number of independent contraction trials")
	rootCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "base RNG seed (0 = fixed default stream)")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 1, "run trials on up to this many workers")
	rootCmd.Flags().BoolVar(&showSteps, "steps", false, "print the winning trial's contraction steps")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunAction(ctx context.Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		g, err := loadGraph()
		if err != nil {
			return err
		}
		log.Debugf("graph loaded: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

		if !convert.IsConnected(g) {
			log.Warnf("graph is disconnected (%d components); the minimum cut is empty", len(convert.Components(g)))
		}

		res, err := contract.MinCut(g,
			contract.WithContext(ctx),
			contract.WithTrials(trials),
			contract.WithSeed(seed),
			contract.WithWorkers(workers),
			contract.WithStepHistory(),
		)
		if err != nil {
			return fmt.Errorf("estimating cut: %w", err)
		}
		log.Infof("estimated cut: %d edges over %d trials", len(res.Cut), res.Trials)

		reference, err := exact.MinCut(ctx, g)
		if err != nil {
			return fmt.Errorf("computing reference cut: %w", err)
		}
		log.Infof("reference cut: %d edges", len(reference))

		printComparison(cmd, evaluate.Compare(reference, res.Cut))
		if showSteps {
			printSteps(cmd, res)
		}

		return nil
	}
}

// loadGraph builds the input graph from --input or --random.
func loadGraph() (*core.Graph, error) {
	switch {
	case inputPath != "" && randomNodes > 0:
		return nil, fmt.Errorf("--input and --random are mutually exclusive")
	case inputPath != "":
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", inputPath, err)
		}
		defer f.Close()

		return core.ParseEdgeList(f)
	case randomNodes > 0:
		log.Debugf("generating G(%d, %g) graph", randomNodes, randomProb)

		return builder.RandomSparse(randomNodes, randomProb, rand.New(rand.NewSource(seed+1)))
	default:
		return nil, fmt.Errorf("either --input or --random is required")
	}
}

func printComparison(cmd *cobra.Command, cmp *evaluate.Comparison) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EDGE\tREFERENCE\tESTIMATED")
	for _, row := range cmp.Rows {
		fmt.Fprintf(w, "%s\t%v\t%v\n", row.Edge, row.InReference, row.InCandidate)
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\njaccard similarity: %.4f\n", cmp.Jaccard)
	if cmp.RatioDefined() {
		fmt.Fprintf(cmd.OutOrStdout(), "size ratio:         %.4f\n", cmp.SizeRatio)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "size ratio:         n/a (empty reference)")
	}
}

func printSteps(cmd *cobra.Command, res *contract.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\ncontraction steps of the winning trial (%d):\n", len(res.Steps))
	for _, s := range res.Steps {
		fmt.Fprintf(out, "  step %d: contracted %s → %d super-nodes, %d edges\n",
			s.Index, s.Contracted, len(s.Nodes), len(s.Edges))
	}
}
