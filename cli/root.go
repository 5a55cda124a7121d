// Package cli wires the showdown command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"github.com/lazharichir/showdown/hands"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:          "showdown [hand-a] [hand-b]",
		Short:        "Compare two five-card poker hands",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		Long: `Showdown evaluates two five-card poker hands and reports which one wins.

Cards are written as a rank followed by a suit, e.g. "As", "10h" or "K♦".
A single "*" stands for a wildcard that becomes whichever card makes the
hand strongest.`,
		Example: `  showdown "AsAhAdAc3s" "AsAhQsQhQd"
  showdown "9h 8h 7h 6h *" "KsKhKdKcKs"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args[0], args[1], verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "dump the full evaluation of both hands")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newDealCmd())

	return cmd
}

func runCompare(handAInput, handBInput string, verbose bool) error {
	evalA, err := hands.EvaluateString(handAInput)
	if err != nil {
		return fmt.Errorf("hand A: %w", err)
	}

	evalB, err := hands.EvaluateString(handBInput)
	if err != nil {
		return fmt.Errorf("hand B: %w", err)
	}

	outcome := hands.Compare(evalA, evalB)
	renderDuel(handAInput, handBInput, evalA, evalB, outcome)

	if verbose {
		litter.D(evalA)
		litter.D(evalB)
	}

	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
