package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/erazemk/izbor/internal/client"
	"github.com/erazemk/izbor/internal/model"
	"github.com/erazemk/izbor/internal/tui"
)

// serverURL resolves --server, then IZBOR_SERVER, then the default.
func serverURL(cmd *cobra.Command) string {
	if cmd.Flags().Changed("server") {
		v, _ := cmd.Flags().GetString("server")
		return v
	}
	if v := os.Getenv("IZBOR_SERVER"); v != "" {
		return v
	}
	return client.DefaultServer
}

func addServerFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("server", "s", client.DefaultServer, "izbor server base URL (env IZBOR_SERVER)")
}

func newVoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Vote on items interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString("category")
			return tui.RunVoteUI(client.New(serverURL(cmd), nil), category)
		},
	}
	addServerFlag(cmd)
	cmd.Flags().String("category", model.CategoryAll, "category to start in")
	return cmd
}

func newRankingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Print items ranked by selection ratio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString("category")
			asJSON, _ := cmd.Flags().GetBool("json")

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			entries, err := client.New(serverURL(cmd), nil).Ranking(ctx, category)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, entries)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderRanking(entries))
			return nil
		},
	}
	addServerFlag(cmd)
	cmd.Flags().String("category", model.CategoryAll, "rank only this category")
	cmd.Flags().Bool("json", false, "print JSON instead of a table")
	return cmd
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print overall and per-category vote totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			c := client.New(serverURL(cmd), nil)
			overall, err := c.OverallStats(ctx)
			if err != nil {
				return err
			}
			categories, err := c.CategoryStats(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, struct {
					Overall    *model.OverallStats   `json:"overall"`
					Categories []model.CategoryStats `json:"categories"`
				}{overall, categories})
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStats(*overall, categories))
			return nil
		},
	}
	addServerFlag(cmd)
	cmd.Flags().Bool("json", false, "print JSON instead of tables")
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
