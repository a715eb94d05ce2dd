package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanzi/internal/dictionary"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List scheduled dates with completion and last score",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setupEnv(cmd, envOptions{})
		if err != nil {
			return err
		}
		defer e.close()

		dates := e.data.Schedule.Dates()
		if len(dates) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "The schedule has no dates.")
			return nil
		}
		states, err := e.svc.Tracker.States(cmd.Context(), dates)
		if err != nil {
			return fmt.Errorf("read completion: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-10s  %-4s  %-5s  %s\n", "Date", "Done", "Score", "Characters")
		fmt.Fprintln(out, strings.Repeat("─", 48))

		done := 0
		for _, st := range states {
			mark := " "
			if st.Completed {
				mark = "✓"
				done++
			}
			score := "—"
			if st.LastScore != nil {
				score = fmt.Sprintf("%d", *st.LastScore)
			}
			chars := e.data.Schedule.Day(st.Date)
			fmt.Fprintf(out, "%-10s  %-4s  %-5s  %s\n",
				st.Date, mark, score, strings.Join(chars, " "))
		}
		fmt.Fprintln(out, strings.Repeat("─", 48))
		fmt.Fprintf(out, "%d of %d days done\n", done, len(states))
		return nil
	},
}

var phraseLabels = map[int]string{
	2: "二字詞",
	3: "三字詞",
	4: "四字詞",
}

var cardsCmd = &cobra.Command{
	Use:   "cards <date>",
	Short: "Print the flashcards of a scheduled date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setupEnv(cmd, envOptions{})
		if err != nil {
			return err
		}
		defer e.close()

		date := args[0]
		if err := e.requireDate(date); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		chars := e.data.Schedule.Day(date)
		fmt.Fprintf(out, "%s · %d characters\n", date, len(chars))
		for _, ch := range chars {
			fmt.Fprintln(out)
			printCard(cmd, ch, e.data.Dictionary.Entry(ch))
		}
		return nil
	},
}

func printCard(cmd *cobra.Command, ch string, entry dictionary.Entry) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, strings.Repeat("─", 40))
	fmt.Fprintf(out, "%s\n", ch)
	fmt.Fprintf(out, "  注音  %s\n", entry.Reading)
	fmt.Fprintf(out, "  部首  %s\n", entry.Radical)
	fmt.Fprintf(out, "  釋義  %s\n", entry.Definition)
	for _, n := range dictionary.PhraseLengths {
		list := entry.PhrasesOf(n)
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(out, "  %s\n", phraseLabels[n])
		for _, p := range list {
			line := "    " + p.Word
			if p.LocalGloss != "" {
				line += "：" + p.LocalGloss
			}
			if p.ForeignGloss != "" {
				line += " (" + p.ForeignGloss + ")"
			}
			fmt.Fprintln(out, line)
		}
	}
}
