package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanzi/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		e, err := setupEnv(cmd, envOptions{NoData: true})
		if err != nil {
			return err
		}
		defer e.close()

		events, err := e.store.EventRepo().QueryLLMRequests(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM requests found.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Fprintln(out, strings.Repeat("─", 96))

		for _, ev := range events {
			if purpose != "" && ev.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !ev.Success {
				ok = "✗"
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				ev.ID,
				ev.Timestamp.Local().Format("2006-01-02 15:04:05"),
				ev.Purpose,
				truncate(ev.Model, 28),
				ev.InputTokens,
				ev.OutputTokens,
				ev.LatencyMs,
				ok,
			)
			if !ev.Success && ev.ErrorMessage != "" {
				fmt.Fprintf(out, "       %s\n", truncate(ev.ErrorMessage, 88))
			}
		}
		return nil
	},
}

// usage aggregates the requests of one purpose.
type usage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	totalMs      int64
}

func (u usage) avgLatency() int64 {
	if u.Calls == 0 {
		return 0
	}
	return u.totalMs / int64(u.Calls)
}

// usageByPurpose groups events by purpose, sorted by purpose.
func usageByPurpose(events []store.LLMRequestEvent) []usage {
	byPurpose := make(map[string]*usage)
	for _, ev := range events {
		u, ok := byPurpose[ev.Purpose]
		if !ok {
			u = &usage{Purpose: ev.Purpose}
			byPurpose[ev.Purpose] = u
		}
		u.Calls++
		if !ev.Success {
			u.Failures++
		}
		u.InputTokens += ev.InputTokens
		u.OutputTokens += ev.OutputTokens
		u.totalMs += ev.LatencyMs
	}

	out := make([]usage, 0, len(byPurpose))
	for _, u := range byPurpose {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage of recorded LLM requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setupEnv(cmd, envOptions{NoData: true})
		if err != nil {
			return err
		}
		defer e.close()

		events, err := e.store.EventRepo().QueryLLMRequests(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-12s  %6s  %6s  %10s  %10s  %8s\n",
			"Purpose", "Calls", "Failed", "Input", "Output", "Avg Ms")
		fmt.Fprintln(out, strings.Repeat("─", 62))

		var totalCalls, totalIn, totalOut int
		for _, u := range usageByPurpose(events) {
			fmt.Fprintf(out, "%-12s  %6d  %6d  %10d  %10d  %8d\n",
				u.Purpose, u.Calls, u.Failures, u.InputTokens, u.OutputTokens, u.avgLatency())
			totalCalls += u.Calls
			totalIn += u.InputTokens
			totalOut += u.OutputTokens
		}
		fmt.Fprintln(out, strings.Repeat("─", 62))
		fmt.Fprintf(out, "%-12s  %6d  %6s  %10d  %10d\n", "TOTAL", totalCalls, "", totalIn, totalOut)
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. gloss)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
