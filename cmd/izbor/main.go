// Command izbor serves the item voting API and provides terminal clients
// for voting and for reading rankings and statistics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "izbor",
		Short: "Vote on catalog items and rank them by selection ratio",
		Long: `izbor keeps a catalog of items grouped into categories. Each vote either
selects or passes an item, and items are ranked by the share of votes that
selected them.

Run "izbor serve" to start the API server, then "izbor vote" to vote from
the terminal.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newInitConfigCmd(),
		newVoteCmd(),
		newRankingCmd(),
		newStatsCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
