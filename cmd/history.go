package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanzi/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quiz attempts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := setupEnv(cmd, envOptions{NoData: true})
		if err != nil {
			return err
		}
		defer e.close()

		attempts, err := e.svc.Attempts.Recent(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No quizzes yet.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-16s  %-10s  %-6s  %s\n", "ID", "Taken", "Date", "Mode", "Score")
		fmt.Fprintln(out, strings.Repeat("─", 56))
		for _, a := range attempts {
			fmt.Fprintf(out, "%-5d  %-16s  %-10s  %-6s  %d/%d\n",
				a.ID,
				a.TakenAt.Local().Format("2006-01-02 15:04"),
				a.Date,
				a.Mode,
				a.Score,
				a.Total,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show (0 for all)")
}
