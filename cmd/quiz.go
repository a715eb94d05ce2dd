package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/hanzi/internal/quiz"
	"github.com/abhisek/hanzi/internal/session"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <date>",
	Short: "Take the quiz of a scheduled date in the terminal",
	Long: "Take the quiz of a scheduled date on stdin/stdout. Answer a multiple-choice " +
		"question with the option number or its text; an empty line skips the question. " +
		"The score is recorded as the date's last score.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetBool("text")

		e, err := setupEnv(cmd, envOptions{})
		if err != nil {
			return err
		}
		defer e.close()

		date := args[0]
		if err := e.requireDate(date); err != nil {
			return err
		}

		q, err := e.svc.Generator.GenerateQuiz(date, e.data.Schedule.Day(date))
		if errors.Is(err, quiz.ErrInsufficientData) {
			return fmt.Errorf("%s has too few characters for a quiz; a quiz needs at least 2", date)
		}
		if err != nil {
			return err
		}

		mode := session.ModeChoice
		if text {
			mode = session.ModeTyping
		}
		s := session.NewState(q, mode)
		playQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), s)

		summary, err := e.svc.Recorder.Record(cmd.Context(), s)
		printSummary(cmd.OutOrStdout(), summary)
		if err != nil {
			e.log.Error("record quiz", zap.String("date", date), zap.Error(err))
			return fmt.Errorf("score not saved: %w", err)
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().Bool("text", false, "Type each answer instead of choosing from options")
}

// playQuiz asks every question of s, reading one answer per line. Input
// ending early leaves the remaining questions unanswered.
func playQuiz(in io.Reader, out io.Writer, s *session.State) {
	scanner := bufio.NewScanner(in)
	for s.Phase == session.PhaseAnswering {
		q := s.Question()
		fmt.Fprintf(out, "\nQ%d/%d  %s\n", s.Current+1, s.Total(), q.Prompt)
		if s.Mode == session.ModeChoice {
			for i, opt := range q.Options {
				fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
			}
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprintf(out, "  skipped · %s\n", q.Answer)
			s.Skip()
			continue
		}

		if s.Answer(answer) {
			fmt.Fprintln(out, "  ✓ Correct!")
		} else {
			fmt.Fprintf(out, "  ✗ Not quite. Correct answer: %s\n", q.Answer)
		}
		if q.Phrase != nil && q.Phrase.ForeignGloss != "" {
			fmt.Fprintf(out, "    %s (%s)\n", q.Phrase.Word, q.Phrase.ForeignGloss)
		}
		s.Next()
	}
}

func printSummary(out io.Writer, summary *session.Summary) {
	res := summary.Result
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("─", 40))
	fmt.Fprintf(out, "Score: %d/%d  (%.0f%%)\n", res.Score, res.Total, res.Percent())

	missed := summary.Missed()
	if len(missed) == 0 {
		return
	}
	fmt.Fprintln(out, "Review:")
	for _, r := range missed {
		submitted := r.Submitted
		if submitted == "" {
			submitted = "(no answer)"
		}
		fmt.Fprintf(out, "  %s\n    yours: %s · answer: %s\n", r.Prompt, submitted, r.Correct)
	}
}
